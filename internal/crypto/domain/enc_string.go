package domain

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// EncString is a self-describing encrypted envelope.
//
// Text form is "<type>.<part>|<part>..." where each part is standard base64:
//
//	0:    iv|data
//	1, 2: iv|data|mac
//	3, 4: data
//	5, 6: data|mac
//
// Strings without a "<type>." header are legacy symmetric envelopes: three
// parts mean type 1 and two parts mean type 0. ParseRSAEncString additionally
// treats a header-less single part as type 3.
type EncString struct {
	EncryptionType EncryptionType
	IV             []byte
	Data           []byte
	Mac            []byte
}

// ParseEncString parses the text form of an envelope.
func ParseEncString(s string) (*EncString, error) {
	if s == "" {
		return nil, ErrInvalidEncString
	}

	var (
		encType EncryptionType
		parts   []string
	)

	header, body, found := strings.Cut(s, ".")
	if found {
		t, err := strconv.Atoi(header)
		if err != nil {
			return nil, ErrInvalidEncString
		}
		encType = EncryptionType(t)
		parts = strings.Split(body, "|")
	} else {
		parts = strings.Split(s, "|")
		if len(parts) == 3 {
			encType = AesCbc128_HmacSha256_B64
		} else {
			encType = AesCbc256_B64
		}
	}

	return fromParts(encType, parts)
}

// ParseRSAEncString parses an envelope read back on the RSA unwrap path.
func ParseRSAEncString(s string) (*EncString, error) {
	if s != "" && !strings.Contains(s, ".") {
		return fromParts(Rsa2048_OaepSha256_B64, []string{s})
	}
	e, err := ParseEncString(s)
	if err != nil {
		return nil, err
	}
	if !e.EncryptionType.IsRSA() {
		return nil, ErrUnsupportedEncryptionType
	}
	return e, nil
}

func fromParts(encType EncryptionType, parts []string) (*EncString, error) {
	want := encType.partCount()
	if want == 0 {
		return nil, ErrUnsupportedEncryptionType
	}
	if len(parts) != want {
		return nil, ErrInvalidEncString
	}

	decoded := make([][]byte, len(parts))
	for i, p := range parts {
		b, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			return nil, ErrInvalidEncString
		}
		decoded[i] = b
	}

	e := &EncString{EncryptionType: encType}
	switch encType {
	case AesCbc256_B64:
		e.IV, e.Data = decoded[0], decoded[1]
	case AesCbc128_HmacSha256_B64, AesCbc256_HmacSha256_B64:
		e.IV, e.Data, e.Mac = decoded[0], decoded[1], decoded[2]
	case Rsa2048_OaepSha256_B64, Rsa2048_OaepSha1_B64:
		e.Data = decoded[0]
	default:
		e.Data, e.Mac = decoded[0], decoded[1]
	}

	return e, nil
}

// String returns the canonical text form, always with a type header.
func (e *EncString) String() string {
	b64 := base64.StdEncoding.EncodeToString

	var parts []string
	switch e.EncryptionType {
	case AesCbc256_B64:
		parts = []string{b64(e.IV), b64(e.Data)}
	case AesCbc128_HmacSha256_B64, AesCbc256_HmacSha256_B64:
		parts = []string{b64(e.IV), b64(e.Data), b64(e.Mac)}
	case Rsa2048_OaepSha256_B64, Rsa2048_OaepSha1_B64:
		parts = []string{b64(e.Data)}
	default:
		parts = []string{b64(e.Data), b64(e.Mac)}
	}

	return strconv.Itoa(int(e.EncryptionType)) + "." + strings.Join(parts, "|")
}

// MarshalBinary encodes a symmetric envelope as type byte, iv, mac, data.
func (e *EncString) MarshalBinary() ([]byte, error) {
	switch e.EncryptionType {
	case AesCbc256_B64:
		out := make([]byte, 0, 1+len(e.IV)+len(e.Data))
		out = append(out, byte(e.EncryptionType))
		out = append(out, e.IV...)
		return append(out, e.Data...), nil
	case AesCbc128_HmacSha256_B64, AesCbc256_HmacSha256_B64:
		out := make([]byte, 0, 1+len(e.IV)+len(e.Mac)+len(e.Data))
		out = append(out, byte(e.EncryptionType))
		out = append(out, e.IV...)
		out = append(out, e.Mac...)
		return append(out, e.Data...), nil
	}
	return nil, ErrUnsupportedEncryptionType
}

// ParseEncArrayBuffer decodes the binary form produced by MarshalBinary.
func ParseEncArrayBuffer(buf []byte) (*EncString, error) {
	if len(buf) == 0 {
		return nil, ErrInvalidEncString
	}

	encType := EncryptionType(buf[0])
	switch encType {
	case AesCbc128_HmacSha256_B64, AesCbc256_HmacSha256_B64:
		const headerLen = 1 + IVSize + MacSize
		if len(buf) <= headerLen {
			return nil, ErrInvalidEncString
		}
		return &EncString{
			EncryptionType: encType,
			IV:             clone(buf[1 : 1+IVSize]),
			Mac:            clone(buf[1+IVSize : headerLen]),
			Data:           clone(buf[headerLen:]),
		}, nil
	case AesCbc256_B64:
		const headerLen = 1 + IVSize
		if len(buf) <= headerLen {
			return nil, ErrInvalidEncString
		}
		return &EncString{
			EncryptionType: encType,
			IV:             clone(buf[1:headerLen]),
			Data:           clone(buf[headerLen:]),
		}, nil
	}

	return nil, ErrUnsupportedEncryptionType
}
