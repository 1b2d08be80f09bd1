package config

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// IsPrivateKey reports whether s is 32 bytes of hex, with or without 0x.
// Only the shape is checked; a key outside the curve order still passes and
// simply derives no address.
func IsPrivateKey(s string) bool {
	b, err := hexutil.Decode("0x" + trimHexPrefix(s))
	return err == nil && len(b) == 32
}

func trimHexPrefix(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}

// DeriveAddress returns the account address controlled by a hex private key.
func DeriveAddress(key string) (common.Address, error) {
	pk, err := crypto.HexToECDSA(trimHexPrefix(key))
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(pk.PublicKey), nil
}

// deriveAddresses maps credentials to checksummed addresses; invalid keys map to "".
func deriveAddresses(credentials []string) []string {
	if len(credentials) == 0 {
		return nil
	}
	addresses := make([]string, len(credentials))
	for i, key := range credentials {
		if addr, err := DeriveAddress(key); err == nil {
			addresses[i] = addr.Hex()
		}
	}
	return addresses
}
