package resources

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rarimo/keycodec/pkcs8"
	"github.com/rarimo/keycodec/spki"
)

// PublicKeyInfo is the JSON form of a decoded SubjectPublicKeyInfo.
// Exactly one key field is populated, matching Algorithm.
type PublicKeyInfo struct {
	// "RSA", "DSA" or "EC"
	Algorithm string         `json:"algorithm"`
	RSA       *RSAPublicKey  `json:"rsa,omitempty"`
	DSAParams *DSAParams     `json:"dsa_params,omitempty"`
	DSA       *DSAPublicKey  `json:"dsa,omitempty"`
	ECParams  *ECParameters  `json:"ec_params,omitempty"`
	EC        *ECPublicKey   `json:"ec,omitempty"`
}

// PrivateKeyInfo is the JSON form of a decoded PKCS#8 PrivateKeyInfo.
type PrivateKeyInfo struct {
	// "RSA", "DSA" or "EC"
	Algorithm string         `json:"algorithm"`
	RSA       *RSAPrivateKey `json:"rsa,omitempty"`
	DSAParams *DSAParams     `json:"dsa_params,omitempty"`
	DSA       *DSAPrivateKey `json:"dsa,omitempty"`
	ECParams  *ECParameters  `json:"ec_params,omitempty"`
	EC        *ECPrivateKey  `json:"ec,omitempty"`
}

func NewPublicKeyInfo(key spki.PublicKey) PublicKeyInfo {
	model := PublicKeyInfo{Algorithm: key.Algorithm().String()}

	switch k := key.(type) {
	case spki.RSA:
		rsa := NewRSAPublicKey(k.Key)
		model.RSA = &rsa
	case spki.DSA:
		params := NewDSAParams(k.Params)
		pub := NewDSAPublicKey(k.Key)
		model.DSAParams = &params
		model.DSA = &pub
	case spki.EC:
		params := NewECParameters(k.Params)
		pub := ECPublicKey{Point: hexString(k.Point)}
		model.ECParams = &params
		model.EC = &pub
	}

	return model
}

func NewPrivateKeyInfo(key pkcs8.PrivateKey) PrivateKeyInfo {
	model := PrivateKeyInfo{Algorithm: key.Algorithm().String()}

	switch k := key.(type) {
	case pkcs8.RSA:
		rsa := NewRSAPrivateKey(k.Key)
		model.RSA = &rsa
	case pkcs8.DSA:
		params := NewDSAParams(k.Params)
		priv := NewDSAPrivateKey(k.Key)
		model.DSAParams = &params
		model.DSA = &priv
	case pkcs8.EC:
		params := NewECParameters(k.Params)
		priv := NewECPrivateKey(k.Key)
		model.ECParams = &params
		model.EC = &priv
	}

	return model
}

func bigIntString(n *big.Int) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func hexString(b []byte) string {
	return hexutil.Encode(b)
}
