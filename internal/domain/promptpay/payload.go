// Package promptpay builds and reads static PromptPay payloads: EMV Merchant
// Presented Mode strings carrying a mobile-number proxy and a THB amount.
package promptpay

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/promptpay-qr/internal/domain/crc16"
	"github.com/Xausdorf/promptpay-qr/internal/domain/tlv"
)

const (
	TagFormatIndicator  = "00"
	TagInitiationMethod = "01"
	TagMerchantAccount  = "29"
	TagCurrency         = "53"
	TagAmount           = "54"
	TagCountry          = "58"
	TagCRC              = "63"

	SubTagApplicationID = "00"
	SubTagMobileNumber  = "01"

	FormatIndicator  = "01"
	InitiationStatic = "11"
	ApplicationID    = "A000000677010111"
	CurrencyTHB      = "764"
	CountryTH        = "TH"

	crcFieldHeader = TagCRC + "04"
)

// Encode builds the payload for a mobile number and a textual amount.
// Amounts that do not parse fail with ErrInvalidAmount before anything is
// assembled.
func Encode(mobile, amount string) (string, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	return EncodeAmount(mobile, d)
}

func EncodeAmount(mobile string, amount decimal.Decimal) (string, error) {
	if err := checkAmount(amount); err != nil {
		return "", err
	}

	body, err := tlv.Encode(
		tlv.New(TagFormatIndicator, FormatIndicator),
		tlv.New(TagInitiationMethod, InitiationStatic),
		tlv.Template(TagMerchantAccount,
			tlv.New(SubTagApplicationID, ApplicationID),
			tlv.New(SubTagMobileNumber, NormalizeMobile(mobile)),
		),
		tlv.New(TagCurrency, CurrencyTHB),
		tlv.New(TagAmount, FormatAmount(amount)),
		tlv.New(TagCountry, CountryTH),
	)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	raw := body + crcFieldHeader
	return raw + crc16.Hex(raw), nil
}
