package promptpay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/promptpay-qr/internal/domain/crc16"
	"github.com/Xausdorf/promptpay-qr/internal/domain/tlv"
)

const crcLength = 4

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Payload is the decoded form of a PromptPay string. Amount is nil when the
// payload carries no tag 54.
type Payload struct {
	FormatIndicator  string
	InitiationMethod string
	ApplicationID    string
	Identifier       string
	Currency         string
	Amount           *decimal.Decimal
	Country          string
	CRC              string
}

// Decode verifies the trailing checksum and extracts the payload fields.
func Decode(payload string) (*Payload, error) {
	if len(payload) < len(crcFieldHeader)+crcLength {
		return nil, fmt.Errorf("%w: too short", ErrMalformedPayload)
	}

	crcStart := len(payload) - crcLength
	if payload[crcStart-len(crcFieldHeader):crcStart] != crcFieldHeader {
		return nil, fmt.Errorf("%w: missing %s checksum field", ErrMalformedPayload, crcFieldHeader)
	}

	got := strings.ToUpper(payload[crcStart:])
	want := crc16.Hex(payload[:crcStart])
	if got != want {
		return nil, fmt.Errorf("%w: got %s, computed %s", ErrChecksumMismatch, got, want)
	}

	fields, err := tlv.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if last := fields[len(fields)-1]; last.Tag != TagCRC {
		return nil, fmt.Errorf("%w: checksum is not the last field", ErrMalformedPayload)
	}

	p := &Payload{CRC: got}
	p.FormatIndicator = value(fields, TagFormatIndicator)
	p.InitiationMethod = value(fields, TagInitiationMethod)
	p.Currency = value(fields, TagCurrency)
	p.Country = value(fields, TagCountry)

	account, ok := tlv.Find(fields, TagMerchantAccount)
	if !ok {
		return nil, fmt.Errorf("%w: no merchant account field %s", ErrMalformedPayload, TagMerchantAccount)
	}
	sub, err := tlv.Parse(account.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: merchant account: %w", ErrMalformedPayload, err)
	}
	p.ApplicationID = value(sub, SubTagApplicationID)
	p.Identifier = value(sub, SubTagMobileNumber)

	if amount, ok := tlv.Find(fields, TagAmount); ok {
		d, err := decimal.NewFromString(amount.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q", ErrMalformedPayload, amount.Value)
		}
		if err := checkAmount(d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		p.Amount = &d
	}

	return p, nil
}

func value(fields []tlv.Field, tag string) string {
	f, _ := tlv.Find(fields, tag)
	return f.Value
}
