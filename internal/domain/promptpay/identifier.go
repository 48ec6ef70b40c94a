package promptpay

import "strings"

const (
	trunkPrefix       = "0"
	countryCodePrefix = "0066"
)

// NormalizeMobile converts a domestic mobile number into the PromptPay
// identifier form. Numbers without a leading trunk zero are returned as is;
// no other validation happens here.
func NormalizeMobile(mobile string) string {
	if strings.HasPrefix(mobile, trunkPrefix) {
		return countryCodePrefix + mobile[len(trunkPrefix):]
	}
	return mobile
}
