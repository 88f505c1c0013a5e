// Package pkcs8 encodes and decodes the PKCS#8 PrivateKeyInfo
// envelope for RSA, DSA and EC private keys.
package pkcs8

import (
	"fmt"

	"github.com/rarimo/certificate-transparency-go/asn1"
	"github.com/rarimo/keycodec/keys"
	"github.com/rarimo/keycodec/types"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

const infoVersion = 0

// PrivateKey is the decoded PrivateKeyInfo: one of RSA, DSA or EC.
type PrivateKey interface {
	// Algorithm reports the key's algorithm family.
	Algorithm() types.Algorithm
}

// RSA is an RSA private key.
type RSA struct {
	Key keys.RSAPrivateKey
}

// DSA is a DSA private key with its domain parameters.
type DSA struct {
	Params keys.DSAParams
	Key    keys.DSAPrivateKey
}

// EC is an EC private key: the curve parameters from the algorithm
// identifier plus the SEC1 key from the privateKey octets.
type EC struct {
	Params keys.ECParameters
	Key    keys.ECPrivateKey
}

func (RSA) Algorithm() types.Algorithm { return types.RSA }
func (DSA) Algorithm() types.Algorithm { return types.DSA }
func (EC) Algorithm() types.Algorithm  { return types.EC }

// Attributes are parsed and discarded on decode; the zero RawValue
// keeps them off the wire on encode.
type privateKeyInfo struct {
	Version    int
	Algorithm  types.AlgorithmIdentifier
	PrivateKey []byte
	Attributes asn1.RawValue `asn1:"optional,tag:0"`
}

// Marshal DER-encodes the key as a PrivateKeyInfo SEQUENCE. The
// attributes slot is always omitted.
func Marshal(key PrivateKey) ([]byte, error) {
	var (
		ai    types.AlgorithmIdentifier
		inner []byte
		err   error
	)

	switch k := key.(type) {
	case RSA:
		ai = types.NewRSAAlgorithmIdentifier()
		inner, err = k.Key.Marshal()
	case DSA:
		ai, err = types.NewDSAAlgorithmIdentifier(k.Params)
		if err == nil {
			inner, err = k.Key.Marshal()
		}
	case EC:
		ai, err = types.NewECAlgorithmIdentifier(k.Params)
		if err == nil {
			inner, err = k.Key.Marshal()
		}
	default:
		return nil, errors.New("unknown private key variant")
	}
	if err != nil {
		return nil, err
	}

	return asn1.Marshal(privateKeyInfo{
		Version:    infoVersion,
		Algorithm:  ai,
		PrivateKey: inner,
	})
}

// Unmarshal parses a PrivateKeyInfo, trying RSA, DSA and EC in order.
// The first variant to parse wins; if none do, the inner failures are
// collapsed into a single error.
func Unmarshal(der []byte) (PrivateKey, error) {
	var raw privateKeyInfo
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "PKCS8: failed to unmarshal key")
	}
	if len(rest) != 0 {
		return nil, errors.New("PKCS8: key with non empty leftover")
	}
	if raw.Version != infoVersion {
		return nil, errors.New(fmt.Sprintf("PKCS8: version %d not supported", raw.Version))
	}

	if key, err := parseRSA(raw); err == nil {
		return key, nil
	}
	if key, err := parseDSA(raw); err == nil {
		return key, nil
	}
	if key, err := parseEC(raw); err == nil {
		return key, nil
	}

	return nil, errors.New("Couldn't parse key")
}

func parseRSA(raw privateKeyInfo) (PrivateKey, error) {
	if err := raw.Algorithm.RSAParameters(); err != nil {
		return nil, err
	}

	key, err := keys.UnmarshalRSAPrivateKey(raw.PrivateKey)
	if err != nil {
		return nil, err
	}

	return RSA{Key: key}, nil
}

func parseDSA(raw privateKeyInfo) (PrivateKey, error) {
	params, err := raw.Algorithm.DSAParameters()
	if err != nil {
		return nil, err
	}

	key, err := keys.UnmarshalDSAPrivateKey(raw.PrivateKey)
	if err != nil {
		return nil, err
	}

	return DSA{Params: params, Key: key}, nil
}

func parseEC(raw privateKeyInfo) (PrivateKey, error) {
	params, err := raw.Algorithm.ECParameters()
	if err != nil {
		return nil, err
	}

	key, err := keys.UnmarshalECPrivateKey(raw.PrivateKey)
	if err != nil {
		return nil, err
	}

	return EC{Params: params, Key: key}, nil
}
