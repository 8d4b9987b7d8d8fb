package service

import "strings"

// wordList holds the 7776 words used to render fingerprint phrases.
//
// The order is part of the output contract: reordering changes every
// fingerprint ever shown to a user.
var wordList = strings.Fields(wordListData)

const wordListData = `
abandon abandoned abbotts abdominal abducted abduction abetting abide abiding abilities
ability able aboard abort abortion about above abroad absence absent
absolute absorb absorbed absurd abuela abuse abused abusive academic academy
accent accept accepted accepting accepts accessory accident accidents accompany according
account accounted accounts accurate accuse accused accusing ache achieve achieved
aching acid acquire acquired acres across acted acting actions activate
activated activity actor actors actress acts actual actually acute adamant
added addicted addiction adding addition address addressed addresses adds adebisi
adios adjourned adjust adjusted adjusting admirable admire admired admirer admiring
admission admit admits admitted admitting adopt adopted adoption adorable adore
adored adores advance advanced advances advantage adventure advice advise advised
advisor advocate aerobics affair affairs affect affected affecting affection affects
afford afraid african after afternoon afterward again against aged agencies
agency agenda agent agents ages aging agitated agony agree agreed
agreeing agreement agrees ahead ahem ahold aidan aides aiding aids
aimed aiming ainsley airline airlines airport airports aisle aitoro alarm
alarmed alarms alas albanian album albums alcazar alcohol alcoholic alert
alerted alexi algebra alias alibi alien alienate alike alimony alistair
alive allah alleged allergic allergies allergy allies allow allowance allowed
allowing allows allright ally almighty almost alone along alongside already
alright alrighty also altar alter altered altering alternate although altitude
alumni alvy always amaze amazed amazing amazingly ambition ambitious ambulance
ambush ambushed amen amendment amends americans ammo amnesia among amongst
amount amounts ample amulet amuse amused amusement amusing analysis analyze
analyzed analyzing anatomy ancestors anchor ancient andie anemia anger angles
angry animals ankle ankles announce announced annoy annoyed annoying annual
annulled annulment anonymous another answer answered answering answers ante anti
antidote antique antiques ants anwar anxiety anxious anybody anyhow anymore
anyone anyplace anything anytime anyway anyways anywhere apart apartment apes
apiece apologies apologise apologize apology apophis appalled appalling apparent appeal
appealing appeals appear appeared appears appetite appetizer applaud applause applied
applies apply applying appointed approach approval approve approved apron aquarium
arcade architect archives area areas argh argon argue argued arguing
argument arguments arise armed armor arms army arnie around arrange
arranged arranging arrest arrested arresting arrests arrival arrive arrived arrives
arriving arrogance arrogant arson arsonist artery article articles artillery artistic
artists artoo arts arvin asap ascension ashamed ashes ashtray aside
asked askin asking asks asleep aspect aspects aspirin assault assaulted
assed assemble assembly asses assess asset assets assign assigned assist
assistant associate assume assumed assuming assurance assure assured astronaut asylum
athlete athletic atom atta attach attached attack attacked attacking attacks
attempt attempted attempts attend attendant attended attending attention attic attitude
attorney attorneys attract attracted auction audience audition auditions aunt auntie
aunts australia authentic author authority authorize auto autograph automatic autopsy
available avanya avenue average avoid avoided avoiding awaiting awaits awake
award awards aware awareness away awful awfully awhile awkward awol
awright babbling babies baby babysit bachelor back backed backfire backfired
backing backpack backs backseat backstage backward backwards backyard bacteria badge
badgering badly bagel baggage bags bahamas bail bailed bailiff bailing
bait bake baked bakery baking balance balanced balcony bald ballet
ballistic ballpark ballroom baloney balsom baltimore band bandage bandages bands
banged banging banished bank banking bankrupt banned banquet baptism baptized
barbecue barbrady bare barely barf bargain bargained barge barged barging
bark barking barn barracks barrel bars bartender bartlet barto base
based basement bases basic basically basics basis batch bath bathrobe
bathroom bathrooms baths bathtub bats batter batteries battery batting battling
beacon beads beams beans bearer bearing beat beaten beating beats
beautiful became because become becomes becoming bedroom bedrooms beds bedside
bedtime beef been beep beeper bees beethoven before began begged
begging begin beginning begins begs begun behalf behave behaved behaving
behavior behaviour behind behold bein being beings bela belgium belief
beliefs believe believed believer believes believing bells belong belonged belongs
beloved below belt belthazor belts bench bend bending beneath benefit
benefits benes benign bent bermuda berries beside besides best betcha
betray betrayal betrayed betraying bets better betting between beverage beware
beyond bible bidder bidding bigger biggest bike bikes billing billion
billions bind binding biopsy birds birth birthday birthdays biscuits bite
bites biting bits bitten bitter bitty bizarre blacked blackmail bladder
blah blame blamed blames blaming blanket blankets blast blasted bleach
bleak bled bleed bleeding blend bless blessing blessings blew blind
blinded blindfold blinding blinking blocked blocking blocks blood blooded blouse
blow blowing blown blows blueberry bluff bluffing blur blurry blush
blushing board boarded boarding boards boat boathouse boats bodies bodily
body bodyguard bogus boil boiled boiling boils bold bolie bolts
bomb bombed bombing bombs bonded bonding bonus book booked booking
books bookstore boom boost boot booze bora boragora border bore
bored boredom boring born borrow borrowed borrowing bosom boss bosses
bossy both bother bothered bothering bothers bottle bottled bottles bottom
bought boulevard bounced bouncing bound bouquet bout boutique bowel bowl
boxes boyfriend boys bracelet braces brag bragging brainer brains brakes
branches bras brass brat brats brave bravest breach bread break
breakdown breakfast breaking breaks breakup breath breathe breather breathing breaths
breed brew brewing bribe bribed brick bridal bride bridge brief
briefcase briefed briefing briefly brighter brightest brilliant bring bringing brings
brit broad broadcast broccoli brochure broke broken bronx brother brothers
brought brow brownies bruise bruised bruises brunch brush brushed brushing
brussels brutal brutality brutally bubbly buckaroo buckle bucks buddies budge
budget buenos buff buffy bugged bugging bugs build building buildings
builds built bulb bulk bulletin bullets bully bummed bump bumped
bumps bumpy bums bundle bunk buns bureau burgers burglar burglary
burial buried burn burned burning burnt burst bursting bury burying
buses bushes business bust busted busting busy buts buyer buyers
buying buys buzz buzzing byes bygones bypass cabin cabinet cables
cabot cabs cadet cafe cafeteria caffeine cage cages cake cakes
calendar calf caliber call called caller callin calling calls calm
calmed calmly calories cambias came camera cameras campaign camping camps
campus canadians canal canary cancel canceled canceling cancelled candid candidate
candles cane canned cannot canoe cans canvas capable capacity cape
capeside capitol capricorn caps captains captive capture captured card cardboard
cardiac cards care cared career careers careful carefully careless cares
caretaker cargo caribbean caring carly carriage carried carries carry carrying
cars cart carton carve carved carving casa cascade case cases
cashed cashmere casket cassadine casserole cast casting casual casually catalog
catalogue catch catches catching category caterer catering cathedral catholic caucasian
caught cause caused causes causing caution cautious cavalry cave cavern
caves caviar cavity cease cedar cedars ceiling celebrate cell cellar
cells cellular cemetery cent center centered centre cents centuries century
cereal cerebral ceremony certain certainly certainty certified cetera chain chained
chair chairman chairs chalk challenge chamber champagne champions chance chances
change changed changes changing channel channels chap chapel chaperone chapter
character charade charge charged charges charging charm charmed charming charms
chart charts chased chasing chat chatting chauffeur cheap cheaper cheat
cheated cheating cheats check checkbook checked checking checks checkup cheer
cheerful cheering cheery cheesy chef chem chemicals chemistry chemo cheque
cherished chess chest chevron chewed chewing chez chic chick chief
child childhood childish children chili chill chills chimney chimp chinatown
chinese chip chipped chips chloe chocolate choice choices choir choke
choked choking choo choose chooses choosing chop chopped choppers chops
chores chorus chose chosen chulak chump chunk chute ciao cider
cigarette circle circles circling circuit circus cities citizen citizens city
civil civilian civilians civilized claim claimed claiming claims clam clamp
clams clan clap clarify clarity clash class classes classical classroom
classy claus clause claw claws clean cleaned cleaners cleaning cleans
cleansing clear clearance cleared clearer clearing clearly clears clerk clerks
clever clicked client clientele clients climate climb climbed climbing cling
clinging clinic clinical clip clipped cloak clock clocks clone close
closed closely closer closes closest closet closets closing closure clot
cloth clothes clothing club clubhouse clubs clue clueless clues clumsy
coach coaching coal coalition coast coaster coat cocoa code codes
coffees coffins coin cold collapse collapsed collar colleague collect collected
collector colleges collision cologne colonel colonies colonnade color colored colorful
colossal colour column coma comb combine combined combo come comeback
comedian comedy comes comfort comfy comic comin coming comm command
commander commence comment comments commerce commit committed committee common commotion
communist community companies companion company compare compared comparing compelled compete
competent competing complain complaint complete completed complex compound computers comrade
concealed concede conceive conceived concept concern concerned concerns concert conclude
concluded concludes condemn condemned condition condo condoms condone conduct conducted
conductor confess confessed confide confided confident confined confirm confirmed confirms
conflict confront confuse confused confusing confusion congress conjure connected connects
conned conning conniving conquer cons conscious consent consider considers console
conspired constable constant consulate consult consulted consumed contact contacted contacts
contain contained container contempt contents contest context continent continue continued
continues contract contracts contrary contrast control controls convent convert convict
convicted convince convinced cooked cooking coolest cooling coop cooped cooperate
copied copies coping cops copy cord cordy core corinthos corky
corn corner cornered corners corny coroner corporal corporate corps correct
corrected correctly corridor corrupt cortlandt cosmetic cosmetics cost costanza costing
costs costume costumes cottage cough could coulda counsel counselor count
countdown counted counter countess counting countless countries country county coup
coupla couple couples coupon courage course courses court courtesy courtroom
courts cousin cove cover coverage covered covering covers cowardly cows
cozy crab crabs crack cracked cracker crackers cracking cracks cradle
crafts cramp cramped cranberry crane cranes crank cranky crash crashdown
crashed crashes crashing crate crawl crawled crawling crazed crazier craziest
craziness crazy create created creates creating creations creature creatures credible
credit credits creek creep creeping creeps creepy cregg cremated crest
crew crib cried cries crime crimes criminal criminals cripple crippled
cris crisis cristian cristobel critic critical criticism criticize critics crock
crooked crop crops crossbow crossed crosses crossing crossword crowd crowded
crowds crown crucial crude cruel cruelty cruising crummy crush crushed
crushing crust crying crypt cryptic crystals cuba cuban cubans cube
cubes cubicle cuckoo cucumber cuddle cuddy cuff cuffs cuisine cult
cultural culture cultures cunning cupboard cupid cups curb cure cured
curfew curiosity curling curly currency current currently curse cursed curtain
curtains curve cushion custody customer customers customs cute cuter cutest
cutie cuts cutting cycle cynical daddy dads dairy damage damaged
damages damaging dammit damp dance danced dancers dances dancing dangerous
dangers danish danvers daph dare daring dark darker darkest darlin
darling darn darned darts dash dashing dashwood data database date
dated dates dating daughter daughters daylight days daytime deacon deaf
deal dealer dealers dealing dealings deals dealt dear dearest dearly
debate debating debris debt debts debut decade decades decaf deceased
deceitful deceive deceived deceiving decency decent deception decide decided decides
deciding decipher decision decisions deck declare declared decorate decorated decoy
decree dedicate dedicated deed deeds deep deeper deepest deeply defeat
defeated defence defend defendant defended defending defense defenses defensive define
defined definite defy degrassi degree degrees deke delay delayed deli
delicate delicious delighted delirious deliver delivered delivers delivery deluded delusion
delusions demand demanded demanding demands demented demise democracy democrat democrats
demon demonic demons denial denied denies dense dental dentist deny
denying departure depend depended dependent depending depends deposit depressed deprived
depth depths deputy deranged describe described desert deserted deserve deserved
deserves desi designed designer designers designing designs desirable desired desires
desk despair desperate despise despises despite dessert desserts destined destroy
destroyed destroyer destroys destruct detail detailed details detained detect detected
detective detector detention determine detonator detour devane develop developed deveraux
device devices devious devote devoted devotion diabetes diagnosed diagnosis dialed
dialogue diapers diary dibs dice dictate didn died dief dies
diet differ different difficult digest digging digits dignan dignity digs
dilemma dilucca dime dimension dimera dimeras dine diner dining dinner
dinners dinosaurs dios diploma dipping dire direct directed directing direction
directly directors dirt disabled disagree disappear disaster disc discharge discount
discovery discreet discuss discussed disease diseases disgrace disguise disguised disgust
disgusted dish dishes dishonest disk dislike dismiss dismissed disorder dispatch
display disposal dispose dispute disregard disrupt distance distant distinct distract
distress district disturb disturbed ditch ditched ditching dive diversion divide
divided division divorce divorced divorcing dizzy dock docks doctors document
documents dodging does doin doing dokey doll dollars dolls domestic
donate donated donation donations done donor dont donut doomed door
doorbell doork doorman doors doorstep doorway dope doren dorm dory
dosage dose dots double doubles doubt doubted doubting doubts dough
doughnuts down download downright downtown dozen dozens draft drag dragged
dragging drained drama dramatic drank drastic draw drawer drawers drawing
drawings drawn draws drazen dread dreadful dream dreamed dreaming dreamt
dreidel dress dressed dresser dresses dressing dried drift drifting drill
drilling drink drinkin drinking drinks drip drive driven drivers drives
driveway drivin driving drool drooling drop dropped dropping drops drove
drown drowned drowning drue drunk drunken drunks dryer drying duct
dudes dull duly dummy dump dumped dumping dumps dumpster dunk
dunno duplicate during dust duties duty dwarf dwell dwelling dyin
dying each eager earlier early earn earned earring earrings ears
earth ease easier easiest easily east easy eaten eater eatin
eating eats eavesdrop eccentric economic economics economy ecstasy ecstatic edge
edges edgy edit editing edition editor editorial educated education effect
effective effects efficient effort efforts eggs egypt egyptian eight eighteen
eighth eighties eighty either elaborate elbow elbows elderly elders elect
elected election elections elegant elements elephants elevated elevator elevators eleven
eleventh eligible eliminate ellenor elope eloped eloping else elsewhere elves
email embarrass embassy embrace emergency emotion emotional emotions emperor employ
employed employee employees employer empty enchanted encoded encounter encourage endanger
ended ending endings endless ends endure enemies enemy enforce engaged
engines engraved enhance enhanced enjoyable enjoyed enjoying enjoys enlighten enlisted
enormous enough enrolled ensure entered entering entertain entire entirely entitled
entrance envelope envy enzo ephram epic epidemic epiphany episode episodes
equal equality equally equals equation equipment equipped erase erased errand
errands erratic error escape escaped escaping essay essence essential establish
estate esteem estimate eternally ethical ethics etiquette eulogy europe european
evacuate evaluate even evening evenings event events ever everwood every
everybody everyday everyone everytime evicted evidence evidently evil evolution evolved
exact exactly exam examine examined examiner examining example exams excellent
except exception excessive exchange exchanged excited exciting exclusive excuse excused
excuses execute executed execution executive exercise exercises exhausted exhibit exist
existed existence existing exists exit exits expand expanding expect expected
expecting expects expelled expense expenses expensive expert expertise experts expired
explain explained explains explode exploded explodes exploding exploit explore exploring
explosion explosive expose exposed exposing exposure expressed exquisite extend extended
extension extensive extent exterior extinct extortion extra extract extras extremely
eyeballs eyebrows eyed eyes fabric fabulous face faced faces facility
facing fact factor factors factory facts faculty fade faded fading
fail failed failing fails failure failures faint fainted fair fairly
fairness fairwinds fairy faithful fake faked faking fall fallen falling
falls false fame familiar families family famous fancy fangs fans
fantastic farce fare farewell farm farmers farms farther fascist fashion
fashioned fashions fast fasten fastest fatal fate father fathered fathers
fault faults favor favorite favorites favors favour favourite faxed fear
feared fears feast feature features federal feds feed feeding feeds
feel feelin feeling feelings feels feeny fees feet feisty felicity
fell fella fellas fellow felon felony felt feminine fence fences
fend fenmore fertility fest festival festive fetal fetch fetched fettes
fetus fever fewer fiance fiancee fiasco fiber fibers fiend fierce
fiery fifteen fifteenth fifth fifties fifty fight fighters fightin fighting
fights figure figured figures figuring fiji file filed files filing
fill filled filling fills film filming filth final finale finally
finals finances financial financing find finding findings finds fine finer
finest fingers finish finished finishes finishing firearms fired firemen fireplace
fires fireworks firing firm firmly first firsthand fisherman fist fists
fits fitted fitting five fixed fixing flag flags flair flakes
flame flaming flannel flap flare flashed flashes flashing flashy flat
flatter flattered flattery flavor flaw flawless flaws flea fleas fled
flee fleeing fleet fleeting flesh flew flies flight flights fling
flip flipped flipping flirt flirting float floating floats flock flooded
flooding floor floors flop florist floss flour flow flowing flown
fluid fluids fluke flunk flush flushed flute flying foam focus
focused focusing fold folded folder folding folks follow followed followers
following follows fond food foods fool fooled fooling foolish foolproof
fools foot footage footing footsteps forbid forbidden force forced forces
forcing forehead foreign foremost forensic forensics forfeit forgave forge forged
forgery forget forgets forgive forgiven forgiving forgot forgotten fork forks
form formal formality formally formation formed former formerly forming forms
forrester forth fortunate fortune forty forward fought foul found founded
four fourteen fourth foyer fraction fracture fractured fragile fragment fragments
fraid frame framed framing frankly frannie fras frasier frat fraud
freaked freakin freaking freely freeze freezer freezes freezing freight frenzy
frequency frequent fresh freshen freshman freshmen freud frickin friction fridge
fried friend friendly friends fries friggin frighten from front frown
froze frozen fruit fruitcake fruits fuel fugitive fulfill fulfilled full
fully fumes function functions fund funding funds funeral funerals funnier
funniest funny furious furnace furniture further fury fuse fuss fussing
future futures gabby gabe gain gained gaining gallery gallon gallons
gals gambling game games gandhi gangs ganz ganza gaps garage
garbage gardener gardening gardens garlic gasoline gasp gate gather gathered
gathering gauge gave gazebo gear geek geeks geez gekko gender
generally generator generous genes genetic geniuses genoa gentle gentleman gentlemen
gently gents genuine genuinely geoff germ germans germs gesture getaway
gets gettin getting ghosts ghoul giddy gift gifted gifts gigantic
gimme girl gittes give given gives givin giving glad gladly
glamorous glamour glance glasses glazed glimpse glitch gloat gloating globe
glorious gloss glove gloves glow glowing glue glued goal goals
goddam goddammit godfather godmother gods goes goin going golly gone
goner gonna gonorrhea good goodbye goodies goodness goodnight goods goodwill
goody goof goon goons gordie gorgeous gosh gospel gossip gotta
gotten gourmet governor gown gowns grab grabbed grabbing grabs gracias
gracious grad grade graders grades graduate graduated grail grain gram
grampa gramps grams gran grand granddad grandma grandpa grandson granted
grasp grass grateful gratitude grave graveyard gravy grazie greasy great
greater greatest greatly greatness greed greek greeks greenlee greenwich greet
greeting greetings grenade gretel grew grid grief grieve grieving griff
grill grilled grilling grin grind grip groceries grocery groom ground
grounded grounds group grow growing growl grown grownup grownups grows
growth grub grudge guarantee guard guarded guarding guards guess guessed
guesses guessing guest guests guidance guide guided guiding guilt guilty
guinea gulf gullible gunfire gunpoint guns gunshot guts gutter guys
habit habits hacked hades hail hair haircut haired hairs half
halfway halliwell halloween halls hallway halo halt hamburger hampshire hamptons
hand handbook handcuffs handed handedly handful handicap handing handle handled
handles handling hands handshake handsome hang hanged hangin hanging hangover
hangs hankey happen happened happening happens happier happiest happily happiness
happy harass harassing harbor hard hardest hardly harlin harm harmed
harmless harmony harsh harvard hassle hassling hatchet hate hated hateful
hates hath hating hatred hats haul hauled hauling haunt haunted
haunting haunts have havin having havoc head headache headaches headed
heading headline headlines heads heal healed healing heals health healthy
heap hear heard hearing hears hearst heart heartache heartbeat hearted
heartfelt heartless hearty heat heated heating heave heavenly heavens heavier
heavily heavy hectic heed heel heels height heights heir heist
held help helped helpful helping helpless helps hence henri hepatitis
herbal herbs here hereby hero heroes heroic hers herself hesitate
hide hideous hides hiding high higher highest highlight highly highness
highway hike hilarious himself hinks hint hints hips hire hired
hiring historic history hitch hitched hits hitting hives hiya hoax
hobbies hobby hold holdin holding holdings holds hole holed holidays
holling hollow hollywood holy home homeless homes homesick hometown homework
homey homicidal homicide homo honest honestly honesty honey honeymoon honor
honorable honored honoring honors honour hook hooked hooking hoop hooray
hoot hope hoped hopefully hopeless hopes hoping hopped hopping hormone
hormones horns horrible horribly horrified horror hors horseback hose hospital
hospitals host hostage hostages hostess hostile hostility hosting hotel hotels
hotline hots hotter hounding hour hourglass hours house household housing
hovering however hoynes hubby huddle huge hugged hugging hugs human
humanity humans humiliate humility humming humor humour hump hunch hundred
hundreds hunger hungry hunh hunk hunky hunted hunters hurl hurricane
hurry hurt hurtful hurting hurts husband husbands hush hustle hutch
hygiene hyper hypnosis hypocrite iced icky idea ideal ideas identical
identify identity idle idol ignition ignorance ignorant ignore ignored ignoring
illegal illegally illness illusions image images imaginary imagine imagined imagining
imitation immature immediate immoral immune immunity impact impatient implant implied
implies imply implying import important imported impose imposter impress impressed
improve improved improving improvise impulse impulses impulsive inability incapable incentive
inch inches incident incision inclined include included includes including income
incoming increase increased indeed index indicate indicated indicates induced indulge
industry infamous infant infected infection inferior infested infierno infirmary influence
info inform informant informed inherit inherited initial initially initials inject
injected injection injured injuries injury injustice inmate inmates inner innocence
innocent innocents input inquiry insanity insect insects insecure inside insides
insight insist insisted insisting insists inspector inspire inspired inspiring installed
instance instant instantly instead instinct instincts institute insulin insult insulted
insulting insults insurance intact integrity intellect intend intended intense intensity
intensive intent intention intercept interest interests interfere interior intern internal
interns interpol interpret interrupt interview intimacy intimate into intrigue intrigued
intro introduce intrude intruding intuition invade invaded invading invalid invasion
invent invented invention inventory invest invested investors invisible invite invited
invites inviting involve involved involves involving iowa iraq iron ironic
irony irregular island islands isolate isolated isolation issue issued issues
italian italy itch itching itchy item items itinerary itself jabez
jabot jacket jackets jacuzzi jaffa jail jammed janitor jaws jealous
jealousy jeans jeez jell jellyfish jeopardy jerk jerking jerks jewelry
jewish jews jinx jitters jobs jock jogging join joined joining
joint joints joke jokes joking journal journey joyous judas judge
judged judgement judges judging judgment juggling jukebox jump jumped jumping
jumps jumpy junk jury just justified justify juvenile kacl karinsky
kasnoff keep keepin keeping keeps kept ketchup kettle khasinau kick
kicked kicking kicks kiddies kiddin kidding kiddo kidnap kidnapped kidnapper
kidney kidneys kids kilos kind kinda kindly kindness kinds kinkle
kippie kiriakis kiss kissed kisser kissing kitchen klutz knack knee
knees knew knife knit knitting knives knob knock knocked knocking
knockout knocks knot knots know knowing knowledge known knows koji
korea korean kosher kovich kubelik kung kynaston label labels labor
labour labs lace lack lacking ladder lads lady laid lakeview
lalita lama lambs lame lamp landed landing landlady landlord lands
language languages laps lapse large larger largest lashing last lasted
lasting lasts late lately later latest latte latter laugh laughed
laughing laughs laughter launch launched laundry lava lavery lawfully lawn
lawndale lawsuit lawsuits lawyer lawyers layer layers laying layout lays
lazy lead leader leaders leading leads leaf league leagues leak
leaked leaking leaned leaning leap learn learned learning learns lease
leash least leave leaves leavin leaving lecter lecture lectures lecturing
ledge leery left leftover leftovers legal legally legendary legit legs
leisure lemme lend length lengths lens lenses less lesser lesson
lessons lethal lets letter letters letting lettuce leukemia level levels
leverage lexie liability liable liaison liam liar liars liberal librarian
library lice licence license licensed licked lied lies life lifeline
lifelong lifesaver lifestyle lifetime lift lifted lifting lifts light lighten
lighting lightly lightning like liked likely likes likewise liking lilah
lilith lilo limb limbo lime limit limited limits limo limousine
limp line lined linen lines lineup lingerie lining linked lips
lipstick liquor list listed listen listened listener listeners listening listens
lists literally litter little live lived liver lives livin living
livvie llanfair llanview load loaded loading loads loaf loaned loans
loathe lobby local locals locate located location locations lock locked
locker locket locking locks lockup lodge lodged loft logic logical
logs lone lonely loner longer longest longing lonigan look looked
lookin looking lookit looks looky loony loop loose loosen lord
lords lorelai lorne lose losers loses losing loss losses lost
lotion lots lotta lotte lottery loud louder louisiana lounge lousy
lovebirds loved loves lovin loving lower lowest lowlife loyal loyalty
luca luck lucked luckiest luckily ludicrous luggage lullaby lump lunar
lunatic lunch luncheon lunches lunchtime lung lungs lure lured lurking
luxury lydecker lyin lying lyrics machinery machines macho maciver madam
madame made madly magazine magazines magical magically magnetic maid maids
mail mailbox mailed mailing mails main mainly maintain majesty majority
make makeover maker makes makeup makin making male males malicious
malkovich mall malta mama mami mamma manage managed manages managing
mandatory maneuver manhattan manhood manic manicure manifest manly manner manners
manny mansion mantan manticore manure many maps marah marching margin
marijuana maris marital marked market marketing markets marklar marone marriage
marriages married marries marrow marry marrying marshal mart martial martinis
martyr marv marvelous mascara mascot masculine mash mashed mask masked
masks mass massacre massage masses massimo match matched matches matching
mate mateo material materials maternal maternity mates math mating matrimony
matter mattered matters mattress maturity maui mausoleum maybe mayor mckechnie
mcmurphy meal meals mean meaning means meant meantime meanwhile measly
measure measured measures measuring meat mechanism medal meddling media medical
medicine medieval mediocre medium meds meems meet meeting meetings meets
mein melt meltdown melted melting members memo memorable memorial memories
memorize memorized memory mend mental mentally mention mentioned mentor menu
menus merci merciful mere merely merger merit merits merrier mess
message messages messed messes messing messy metaphor meteor meter meters
meth methods mice microwave middle midge midgets midst midterm midwest
might migraine mija mijo mild mildly mile military militia milk
mill million millions milwaukee mind minded minding mindless minds mine
mineral mines mingle mini miniature minimal minimum minions minister minority
mint mints minus minute minutes miracle miracles mirror mirrors miserable
misery misguided misjudged misplaced miss missed misses missile missiles missing
missions missus mist mistake mistaken mistakes mistletoe mitzvah mixed mixing
mkay mmhmm moaning mocking mode model modeling modern modest module
mold mole molecular moment moments momentum momma mommy moms monastery
monitored monitors monsieur monsters montega month monthly months mood moods
moonlight moot moping moral morale morality morally morals morbid more
morgue mornin morning mornings morphine mortal mortals morty mosquito most
mostly motel moth motion motions motivated motive motives motor motto
mountains mounted mountie mourn mourning moustache mouth mouths move moved
movement movements movers moves movie movies movin moving much muddy
muffins mugged mule multi multiple multiply mulwray mumbo mummy mural
museum museums mush mushrooms mushy musical musician musicians muslim muslims
must musta mustache mutt mutual myself mysteries mystery mystical myth
mythology nagging nail nailed nails naive name named namely names
naming nanites nanny napkin napkins narcotics narrow narrowed nasa nasal
nasedo nashville nate national native natives natural naturally nature nausea
nauseous navigate nbsp near nearby nearest nearly neat necessary necessity
neck necklace necks need needed needing needle needles needless needs
needy negative neglected negotiate negro neighbor neighbors neither nemo nephew
nerd nerds nerve nerves nervous nessa nest networks neurotic neutral
never nevermind newborn newest newly newlyweds news newspaper next niagara
nice nicely nicer nicest nickname niece night nightcap nightclub nighter
nightfall nightgown nightmare nights nikolas niles nine nineteen ninety ninotchka
ninth nobel nobody nods noise noises noisy nominated none nonsense
nonstop noon noose nope norm normal normally northwest nose noses
nostrils nosy notch note noted notes nothin nothing notice noticed
notices noticing notified notify notion notorious novel novels nowadays nowhere
nuclear nudge nuisance nuke numb number numbered numerous nuns nurse
nursery nursing nurturing nuts nutty nyah oakdale oath obey object
objection objective obligated oblige obliged obnoxious obscene observe observed observer
observing obsessed obsessing obsession obsessive obsolete obstacle obstacles obtain obtained
obvious obviously occasion occasions occupied occur occurred occurs ocean oddly
odds odor offence offend offended offense offensive offer offered offering
offers office officer officers offices official officials offs offspring often
ogre ohio oink okay okey olaf older oldest olives olympics
omelet omen omigod onboard once ones ongoing only onto oops
open opened opener opening openly opens opera operate operated operates
operating operation operative opinion opinions opium opponent opposed opposite oprah
optimism option options orbit orchestra ordeal order ordered ordering orderly
orders ordinary organ organic organism organize organized organs origin original
orleans orphan orphanage orphans orson other others otherwise ouch ought
oughta oughtta ounce ounces ours ourselves outa outcast outcome outdoors
outer outfit outfits outlet outrage outraged outs outside outta oval
oven over overall overboard overcome overdose overdue overhead overhear overheard
overload overlook overly overnight overrated overreact override overruled overseas oversight
overtime owed owes owned owner owners ownership owning owns oxygen
oysters pacey pack package packages packed packing packs pact pads
pageant paged pager pages paging paid pain painful painfully painless
pains paint painted painting paintings pair pairs pajamas pale palms
pals pancakes panel panic panicked panicking pans pants paolo papa
paper papers paperwork parachute parade paragraph parallel paralysis paralyzed paranoia
paranoid parasite parasites pardon parent parental parenting parents parked parking
parlor parole part partial partially parties parting partly partner partners
parts party partying passage passed passenger passes passing passions passive
passports past pasta paste pastry patch patched paternity path pathetic
paths patient patients patio patriotic patrol patronize pattern patterns pause
pawn paws payback paycheck payin paying payment payments payoff payroll
pays pcpd peace peaceful peas peculiar pedal pedestal peed peeking
peep pegged penalty penance pencils pending penetrate pennies pens pension
pentagon penthouse people pepperoni percent perfect perfectly perform performed perfume
perhaps peril perimeter period periods perjury perk perks perky permanent
permit permitted perp person persona personal personnel persons persuade persuaded
peru pesky pest petey petite petition petrified pets phase pheebs
phew phoebe phone phoned phones phonse phony phrase physical physician
piano pick picked picket pickin picking picky picnic picture pictured
pictures picturing piece pieces pier pierced pies pigeons pigs pile
pill pillows pills pinch pine pineapple pining pinned pinpoint pins
pint pipe pipes pitch pitched pitching pitiful pits pity place
placed placement places placing plague plaid plain plaintiff plan plane
planes planets planned planner planning plans plant planted planting plants
plaque plate plates platform platoon platter play played players playin
playing plays plea plead pleading pleasant pleased pleases pleasure pleasures
pledge plenty plot plotting ploy plug plugged plugs plumbing plunge
plus plutonium pneumonia pocket pockets pods poem poems poet poetic
poetry point pointed pointers pointing pointless points pointy poisoned poisoning
poisonous poke poked poking polar pole policeman policemen policies policy
polish polished polite politely political politics poll polling polls polygraph
pompous ponies poof pool pools poor poorer poorly popped popping
pops popular porch pork port portable portal portfolio portion portofino
portrait pose posed posing position positions positive posse possess possessed
possible possibly postcard posted poster posters postpone postponed potatoes potential
potion potions pottery pound pounds pour poured pouring poverty powdered
powered powerful powerless practical practice practiced practices praise prank pranks
pray prayed prayer prayers praying preach preaching precinct precise precisely
precision predict predicted prefer preferred prefers pregnancy pregnant prejudice premature
premiere premises prep prepare prepared preparing prepped pres prescribe presence
present presented presents preserve preserved president presiding press pressed presses
pressing pressure pressured pressures presume pretend pretended pretends prettier prettiest
pretty pretzels prevail prevent prevented preview previous prey priced priceless
prices prick pride priests primal primary prime primitive princeton principal
principle print printed prints priority prison prisoner prisoners privacy privately
privilege privy prize prizes probable probably probation probe problem problems
procedure proceed proceeds process processed produce produced producer producers produces
producing product products prof professor profile profits profound prognosis program
programs progress project projector projects prom prominent promise promised promises
promising promote promoted promoting promotion prone pronounce pronto proof prop
propane proper properly property proposal propose proposed proposing props pros
prosecute prospects protect protected protector protects protein protest proteus protocol
prototype proud prove proved proven proves provide provided provides providing
proving provoke provoked prudent prue prying psst psych psyche psyched
psychic psychotic puberty public publicity publicly publish published publisher puddle
puerto puffs puke pull pulled pulling pulls pulp pulse pump
pumped pumping pumps punch punched punches punching puncture punish punished
punishing punk punks pupils pupkin puppet puppets purchase purchased pure
purely purity purpose purposely purposes purse pursue pursued pursuing pursuit
push pushed pushes pushing pushy puts puttin putting puzzle puzzles
qfxmjrie quack quaid quaint qualified qualifies qualify qualities quarrel quarry
quarter quarters queer question questions quick quicker quickie quickly quid
quiet quietly quilt quit quite quits quitter quitting quiz quote
quotes quoting rabbi rabble race races rach racial racist rack
racket radar radiant radiation radio radius rafe raft rage raging
rags raid rail railing rain raining rainy raise raised raiser
raises raising raisins rally rambaldi rambling ramp ranch range rank
ranks rant ranting raoul rapid rapidly rapids rappaport rare rarely
rate rates rath rather rating ratings rational rats ratted rattle
rattled rave raving rawley rays reach reached reaches reaching react
reacted reacting reaction reactor read reade reading readings reads ready
real realise realised realistic realities reality realize realized realizes realizing
really realm reap rear rearrange reason reasoning reasons reassure rebellion
rebound rebuild recall receipt receipts receive received receiver receiving recent
recently reception recess recipe recipes recital recite reckon reclaim recognise
recognize recommend reconcile reconnect record recorded recorder recording records recover
recovered recovery recruit recruited redeem reduce reduced reef reeks refer
reference referred referring refill refined reflect reflects reform refrain refresh
refuge refund refuse refused refuses refusing regain regained regard regarding
regards regiment region regional regret regrets regretted regular regularly rehab
rehearsal rehearse reiber reign reject rejected rejecting rejection relate related
relation relations relative relatives relax relaxed relaxing relay release released
releasing relevant reliable relief relieve relieved religion religious relive reliving
reluctant rely remain remained remaining remains remark remarks remarried remedy
remember remembers remind reminded reminder reminding reminds remo remorse remote
remotely remove removed removing renew renowned rent rental rented renting
reopen repair repaired repairs repay repeat repeated repeating rephrase replace
replaced replacing report reported reporter reporters reporting reports represent repressed
repulsive request requested requests require required requires rescued rescuing research
resent reserve reserved reset residence residents residue resign resigned resist
resisting resolve resolved resort resources respect respected respects respond responded
response rest rested resting restless restore restored restraint restroom rests
result results resume retail retain retainer retaliate rethink retire retiring
retreat retrieval retrieve retro return returned returning returns reunion reunited
reveal revealed revealing revenge reverend reverse reversed reviewed reviewing reviews
revive revoir revoked revolve reward rewarded rewarding rewind rewrite rhyme
rhythm rianna ribbon ribs rican richer richest riddance ridden ride
rides ridge ridin riding rifle rigged right righteous rightful rights
righty riled ring ringing rings rink rinse riot ripe ripped
ripping rips rise risen rises rising risk risked risking risks
risky ritual rituals rival river riviera road roads roaming roar
roast roasted robbed robber robberies robbers robbery robbing robe robes
rocked rocking rode role roles roll rolled rolling rolls romance
romantic rome roof room roommate roommates rooms rooting roots rope
ropes rosco roses rotation rotting rough roughly round route routine
roxy rsquo rubbed rubbing rubbish rude ruin ruined ruining ruins
rule ruled ruler rules ruling rumor rumors rumour rumours rune
runnin running runs runway ruse rushed russians ruthless sabotage sabotaged
sack sacred sacrifice saddam saddest saddle sadly sadness safe safely
safer safest said sail sailed sailors sake sakes salad salary
sale salem salesman saliva salon salt salty salute salvage salvation
samaritan same sami sanctity sanctuary sand sandburg sandwich sane sank
sappy sarcasm sarcastic sarge sark satellite satisfied satisfy saturday sauce
saucer saudi sauna save saved saves saving savings savvy sayin
saying says scale scalp scalpel scam scamming scams scan scandal
scar scarce scare scarecrow scared scares scarf scarier scaring scarred
scars scary scatter scattered scenario scenarios scene scenery scenes scent
schedule scheduled schedules scheme schemes scheming schibetta schmuck school schools
science scientist scissors scoop scoot scope score scored scores scottish
scouts scram scrambled scratch scratched scratches scrawny scream screamed screaming
screams screech screen screening script scroll scrub scrubbing scudder sculpture
scum scuse seaborn sealed seams searched searching seas season seasons
seat seated seating seats second secondary secondly seconds secrecy secretary
secretive secretly secrets section sector secure secured sedated sedative seduce
seduced seducing seduction seed seeds seein seeing seek seeks seem
seemed seems seen seer sees segment seize seizure seizures seldom
selected selection self selfish selfless sell seller selling semen semester
semi seminar senate senator send sending sends senior seniors senor
senora sensation sense sensed senseless senses sensible sensing sensitive sensors
sent sentence sentenced sentences sentiment separate separated sequence sera sergeant
serial series serious seriously sermon serum servant servants serve served
serves services serving session setback sets setting settle settled settling
setup seven seventeen seventh seventy several severe severed severely sewer
sewers sewing shabby shack shacking shades shadows shady shaft shake
shaken shaking shaky shall shallow shalt sham shame shameless shape
shaped shapes share shared shares sharing shattered shave shaving shed
sheer sheet sheldrake shelf shelter shelves sheridan sheriff shield shift
shifted shifting shifts shindig shine shines shining shiny ship shipment
shipped shipping ships shirt shirts shock shocked shocking shoe shoes
shoo shoot shooters shooting shoots shop shopping shops shortage shortcut
shortly shorts shot shots should shoulda shoulder shoulders shout shouting
shove shoved shoving show showed shower showing shown shows shred
shreds shrek shrine shrink shrinks shroud shrunk shush shut shuts
shutting sibling siblings sick sickness side sided sidelines sides sidewalk
sideways siding sigh sight sighting sights sign signal signals signature
signed signing signor signs silence silent silk silly similar simpler
simply since sincere sincerely sincerity sing singapore singers singing singles
sings sink sinking sins sipping sire siren sirens sirs sister
sisters sits sitter sittin sitting situation sixteen sixth sixties sixty
size sized sizes skank skates skating skeleton skeptical sketch sketches
sketchy skies skin skip skipped skipping skirt skirts skull skye
slam slammed slamming slap slapped slapping slayers slaying sleaze sleazy
sled sleep sleeping sleepless sleepover sleeps sleeve sleeves sleigh slept
slice sliced slices slide slides sliding slight slightest slightly slime
slimy sling slip slipped slippers slipping slips slit sloane slob
slot slots slow slowed slower slowing slowly slug slumber smack
smaller smallest smart smarter smartest smarts smash smashed smear smell
smelled smelling smells smile smiled smiling smitten smoked smoking smoochy
smoothly smug smuggle smuggling smythe snack snag snap snapped snaps
snatched sneak sneaking sneeze sniff snitch snob snooping snore snoring
snot snowed snowing snuck soak soaked soaking soap sober social
socially society sock socks soda sodas sodium sofa soft soften
soil sold soldiers sole solely solemn solid solitary solution solve
solved solves solving some somebody someday somehow someone someplace somethin
something sometime sometimes somewhat somewhere song songs sonny sonogram sons
sookie soon sooner soothing sophomore sordid sore sorel sorority sorrow
sorry sort sorta sorted sorts sought soul souls sound sounded
sounding sounds soup sour source sources south southeast southwest souvenir
soviet soviets space spaces spaceship spaghetti span spanish spare spared
spark sparkling speak speaking speaks special specially specials specialty species
specific specifics specimen spectacle spectra speech speeches speeding spell spelled
spelling spells spend spending spends spent sperm spicy spiders spielberg
spiked spill spilled spilling spin spinach spinal spine spinning spirited
spirits spiritual spit spite spitting splendid split splitting spoil spoiled
spoiling spoke spoken sponsor spooked spot spotlight spots spotted spouse
sprained spray spreading spree sprung spun spur spying squad square
squared squares squat squeaky squeeze squeezed squeezing stab stabbed stabbing
stability stable stables stadium staff stage staged stages stain stained
stains staircase stairs stairwell stake stakeout stakes stale stalk stalked
stalking stall stalling stamp stand standards standing stands starboard stare
stared stares staring starring start started starters startin starting startle
startled starts starve starved starving stash stashed stat state stated
statement states stating station stationed stations stats statue statues status
statute stavros stay stayed stayin staying stays steady steak steaks
steal stealing steals steam steamed steamy steep steer steering stefano
stem stenbeck stench step stepped stepping steps sterile steroids stetson
stew stick sticker sticking stiff still stink stinking stinks stir
stirred stirring stitch stitches stock stocked stockings stole stolen stomach
stomp stood stool stoop stop stopped stopping stops storage store
stored stores stories stormed story stove straight strained stranded strange
strangely strangers strangest strangle strangled strapped strategic strategy straw straws
stray streak street streets strength stress stressed stressful stretch stretched
stricken strict strictly strikes striking string stringing strings stripped strippers
stripping strips strokes stroll stronger strongest strongly struck structure struggle
struggled strung stubborn stuck student students studied studies studios study
studying stuff stuffed stuffing stuffy stumble stumbled stunned stunning stunt
stunts style stylish subid subject subjects submarine subpoena substance subtle
suburbs succeed succeeded succubus such suction sudden suddenly sued suffer
suffered suffering suffers suffice suggest suggested suggests suing suit suitable
suitcase suitcases suite suited suits summon summoned sundae sunk sunnydale
superhero superior superiors supervise supper supplier supplies supply support supported
supports suppose supposed sure surely surface surge surgeon surgeons surgery
surgical surplus surprise surprised surprises surrender surrogate surround survival survive
survived survives surviving survivor survivors suspect suspected suspects suspended suspense
suspicion sustain sustained swallowed swam swamp swamped swap swat sway
swear swearing swears sweat sweater sweaters sweating sweaty sweep sweeping
sweeps sweeter sweetest sweetie sweetness swell swelling swept swim swing
swings swiss switch switched switching swollen swoop swore sworn swung
symbol symbolic symbols sympathy symphony symptom symptoms sync syndicate syndrome
synthetic syringe syrup systems tabby table tables tabloid tabloids tabs
tack tackle tacky tacos tactic tactical tactics tagataya tagged taggert
tags tail tailor tails take taken takeout takeover takes takin
taking tale talent talented talents tales talk talked talker talkin
talking talks tall taller tampered tampering tangled tank tanks tape
taped tapes taping tapped tapping taransky targeted targets task taste
tasted tasteful tastes tasting tattooed tattoos taught taunting taxes taxi
taxpayers teach teachers teaches teaching team teams tear tearing tears
tease teasing technical technique tedious teenager teenagers teeny teeth telegram
telephone telesave telescope tell tellin telling tells telly temper tempo
temporary tempt tempted tempting tenant tenants tend tendency tender tends
tennessee tens tense tension tent tenth term terminate termites terms
terrace terrible terribly terrific terrified territory terrorism terrorist tess testament
tested testified testify testimony tests testy text textbook than thank
thanked thankful thanking thanks that thaw theater theatre thee theft
their theirs them theme then theories theory therapist therapy there
therefore thermal these thesis they thick thief thieves thigh thin
thing things thingy think thinkin thinking thinks thinner third thirst
thirsty thirty this thornhart thorough those thou though thought thoughts
thousand thousands thread threat threaten threatens threats three threshold threw
thrill thrilled thrilling thrive throats throne throttle through throw throwing
thrown throws thug thugs thump thursday thus tibet tick ticked
ticket tickets ticking tide tidy tied ties tighten tighter tile
till tilt time timed timeless timer times timetable timing timmih
tiniest tiny tipped tippin tips tire tired tires tissue tissues
title titles toast tobacco today toddy toenails toes together toilet
toilets token tokyo told tolerance tolerate toll tomatoes tomb tomorrow
tone tongue tongues tonic tonight tons took tools toot tooth
toots topic topless topolsky tops torch torched tore torment torn
torrance torture tortured torturing toss tossed tossing total totally touch
touchdown touched touches touching touchy tough tougher toughest tour tourist
tourists tours toward towards towel towels tower town toxic toying
toys trace traced traces track tracked tracking tracks trade traded
trading tradition tragedy tragic trail trailer train trained training trait
traitor traits tramp transfer translate transport trap trapped traps trash
trashed trashing trashy trauma traumatic traveled traveling travels travers tray
treason treasures treasury treat treated treating treatment treats treaty tree
trees trembling trench triad trial trials tribbiani tribe tribute trick
tricked tricks tried tries triggered trim trimester trip triple tripped
tripping trips trivial troop troops trophies trophy troubled troubles troubling
truce true truly trunk trust trusted trusting trusts truth truthful
truths tryin trying tube tubes tucked tuition tulsa tummy tumor
tune tuned tunes tunnel tunnels turd turf turkeys turkish turmoil
turn turned turning turns tuscany tutor tutoring tweek twelfth twelve
twenties twenty twice twig twin twins twist twisting twists twit
twitch tying type typed types typical typically typing ugly ulterior
ultimatum unable unarmed unaware unborn uncanny uncertain uncle unclear uncommon
uncool uncover uncovered under underage undermine underway underwear undo undone
undressed uneasy unethical unfair unfit unhappy unhealthy unholy uniform uniforms
uninvited union unique unit unite units unity universal universe unleashed
unless unlike unlikely unlimited unload unlock unlocked unlucky unnatural unpack
unseen unsolved unstable untie until unto untrue unusual unusually unwanted
unwind upcoming update upfront upgrade uphold upon upper upright upset
upsets upsetting upside upstairs uptight uranium urge urgent urges urine
used useful useless uses using usual usually utah utmost utterly
vacant vacations vaccine vacuum vague vaguely vain valet valid valium
valuable value valued values valve vampires vanish vanished vanity vanquish
variety various varsity vase vast vatican vault vecchio vegas vegetable
vehicle vehicles veil vein veins vendetta vending vengeance vent venue
verbal verdict verge verify vermin versa verse version versus very
vessel vessels vested veteran veto viable vial vibe vibes vice
vicinity vicious victim victims videos videotape view viewers viewing views
vigilante viki viktor vile villain vinegar violate violated violating violation
violence violent viral virginity virgins virtually virtue virus visible visions
visit visited visiting visitor visitors visits vista vital vitals vitamin
vitamins vocal vodka voice voices void voila volatile volumes volunteer
vomit vote voted voters votes voting vouch vous vowed vows
voyage vulgar vultures wacko wacky waffles wager wagon waist wait
waited waiter waitin waiting waitress wake wakes waking walk walked
walkie walkin walking walks wallet wallow wallowing wallpaper walt wand
wander wandered wandering wanna want wanta wanted wanting wants wardrobe
warehouse warfare warlocks warm warmed warmer warming warmth warn warned
warning warnings warped warrant warrants wars warton wash washed washing
waste wasted wasting watch watched watches watchin watching water watergate
watering wave waved waves waving ways weak weaker weakness wealthy
weapon weapons wear wearin wearing wears weary weather weave website
wedded wedding weddings wedge wednesday week weekend weekends weekly weep
weeping weigh weighed weighing weighs weight weights weird weirder weirdest
weirdo weiskopf welcomed welcoming welfare well welles wench went were
whack whacked whaddya whale wham wharf what whatcha whatnot whatta
wheel when whenever where whereas wherever whether whew which whichever
whiff while whim whine whining whiny whip whipped whipping whistle
whit whiz whoa whoah whoever whole wholesome whom whoo whoop
whoopee whoops whose wide wider widow wife wigand wild wildest
wildlife wildly wildwind will willing willingly wimp wind window winds
wine wings wink winning wins winthrop wipe wiped wiping wire
wired wires wiring wisconsin wisely wish wished wishes wishful wishing
witch witches with withdraw withdrawn withhold within without witness witnessed
witnesses wits witter witty woah woak woke wolek wolfram woman
womb women wonder wondered wonderful wondering wonders wont woof wool
woozy word words wore work worked worker workers workin working
workplace works workshop world worlds worldwide worm worms worn worried
worries worry worrying worse worship worships worst worth worthless would
woulda wound wounded wounds wrap wrapped wrapping wraps wrath wreck
wrecked wrecking wrestling wretched wring wrinkle wrinkles wrist wrists write
writers writes writing written wrong wrote wuss wynant wyndemere xander
yacht yada yale yank yanked yard yards yawn yeah year
yearbook years yell yelled yelling yesterday yikes yoga yogurt younger
youngest your yours yourself youse youth yuck yukon zach zander
zende zero zillion zoey zombies zone
`
