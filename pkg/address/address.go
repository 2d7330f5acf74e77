// Package address classifies bitcoin address strings by network.
package address

import (
	"strings"

	"btcdash/pkg/models"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// testNet4Params only differs from testnet3 in name for address purposes:
// both share the "tb" segwit prefix and the base58 version bytes.
var testNet4Params = func() chaincfg.Params {
	p := chaincfg.TestNet3Params
	p.Name = "testnet4"
	return p
}()

var networkParams = map[models.Network]*chaincfg.Params{
	models.Mainnet:  &chaincfg.MainNetParams,
	models.Testnet:  &chaincfg.TestNet3Params,
	models.Testnet4: &testNet4Params,
	models.Signet:   &chaincfg.SigNetParams,
	models.Regtest:  &chaincfg.RegressionNetParams,
}

// Validate classifies addr after trimming surrounding whitespace. The first
// network in models.Networks that accepts the address is reported.
func Validate(addr string) models.Validity {
	s := strings.TrimSpace(addr)
	if s == "" {
		return models.Validity{Kind: models.Empty}
	}
	for _, net := range models.Networks {
		if validFor(s, networkParams[net]) {
			return models.ValidFor(net)
		}
	}
	return models.Validity{Kind: models.Invalid}
}

func validFor(s string, params *chaincfg.Params) bool {
	decoded, err := btcutil.DecodeAddress(s, params)
	if err != nil {
		return false
	}
	// Raw hex public keys decode for every network but are not addresses.
	if _, ok := decoded.(*btcutil.AddressPubKey); ok {
		return false
	}
	return decoded.IsForNet(params)
}
