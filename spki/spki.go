// Package spki encodes and decodes the X.509 SubjectPublicKeyInfo
// envelope for RSA, DSA and EC public keys.
package spki

import (
	"github.com/rarimo/certificate-transparency-go/asn1"
	"github.com/rarimo/keycodec/keys"
	"github.com/rarimo/keycodec/types"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// PublicKey is the decoded SubjectPublicKeyInfo: one of RSA, DSA or EC.
type PublicKey interface {
	// Algorithm reports the key's algorithm family.
	Algorithm() types.Algorithm
}

// RSA is an RSA public key.
type RSA struct {
	Key keys.RSAPublicKey
}

// DSA is a DSA public key with its domain parameters.
type DSA struct {
	Params keys.DSAParams
	Key    keys.DSAPublicKey
}

// EC is an EC public key: the curve parameters from the algorithm
// identifier and the uninterpreted point octets from the
// subjectPublicKey bit string.
type EC struct {
	Params keys.ECParameters
	Point  []byte
}

func (RSA) Algorithm() types.Algorithm { return types.RSA }
func (DSA) Algorithm() types.Algorithm { return types.DSA }
func (EC) Algorithm() types.Algorithm  { return types.EC }

type subjectPublicKeyInfo struct {
	Algorithm types.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// Marshal DER-encodes the key as a SubjectPublicKeyInfo SEQUENCE.
func Marshal(key PublicKey) ([]byte, error) {
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
		// The bit string payload is the point itself, not a nested
		// ASN.1 value.
		inner = k.Point
	default:
		return nil, errors.New("unknown public key variant")
	}
	if err != nil {
		return nil, err
	}

	return asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: ai,
		PublicKey: asn1.BitString{Bytes: inner, BitLength: len(inner) * 8},
	})
}

// Unmarshal parses a SubjectPublicKeyInfo, trying RSA, DSA and EC in
// order. The first variant to parse wins; if none do, the inner
// failures are collapsed into a single error.
func Unmarshal(der []byte) (PublicKey, error) {
	var raw subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "X509: failed to unmarshal key")
	}
	if len(rest) != 0 {
		return nil, errors.New("X509: key with non empty leftover")
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

func parseRSA(raw subjectPublicKeyInfo) (PublicKey, error) {
	if err := raw.Algorithm.RSAParameters(); err != nil {
		return nil, err
	}

	key, err := keys.UnmarshalRSAPublicKey(raw.PublicKey.RightAlign())
	if err != nil {
		return nil, err
	}

	return RSA{Key: key}, nil
}

func parseDSA(raw subjectPublicKeyInfo) (PublicKey, error) {
	params, err := raw.Algorithm.DSAParameters()
	if err != nil {
		return nil, err
	}

	key, err := keys.UnmarshalDSAPublicKey(raw.PublicKey.RightAlign())
	if err != nil {
		return nil, err
	}

	return DSA{Params: params, Key: key}, nil
}

func parseEC(raw subjectPublicKeyInfo) (PublicKey, error) {
	params, err := raw.Algorithm.ECParameters()
	if err != nil {
		return nil, err
	}

	return EC{Params: params, Point: raw.PublicKey.RightAlign()}, nil
}
