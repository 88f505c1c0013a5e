package resources

import (
	"github.com/rarimo/keycodec/keys"
)

// DSAParams is the JSON form of DSA domain parameters.
type DSAParams struct {
	P string `json:"p"`
	Q string `json:"q"`
	G string `json:"g"`
}

// DSAPublicKey is the JSON form of a bare DSA public key.
type DSAPublicKey struct {
	Y string `json:"y"`
}

// DSAPrivateKey is the JSON form of a bare DSA private key.
type DSAPrivateKey struct {
	X string `json:"x"`
}

func NewDSAParams(params keys.DSAParams) DSAParams {
	return DSAParams{
		P: bigIntString(params.P),
		Q: bigIntString(params.Q),
		G: bigIntString(params.G),
	}
}

func NewDSAPublicKey(key keys.DSAPublicKey) DSAPublicKey {
	return DSAPublicKey{Y: bigIntString(key.Y)}
}

func NewDSAPrivateKey(key keys.DSAPrivateKey) DSAPrivateKey {
	return DSAPrivateKey{X: bigIntString(key.X)}
}
