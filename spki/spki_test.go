package spki

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/rarimo/certificate-transparency-go/asn1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rarimo/keycodec/keys"
	"github.com/rarimo/keycodec/types"
)

func testPoint() []byte {
	// uncompressed point: 04 || X || Y
	point := make([]byte, 65)
	point[0] = 0x04
	for i := 1; i < len(point); i++ {
		point[i] = byte(i)
	}
	return point
}

func TestUnmarshalRSA(t *testing.T) {
	key := RSA{Key: keys.RSAPublicKey{N: big.NewInt(3233), E: big.NewInt(17)}}

	der, err := Marshal(key)
	require.NoError(t, err)

	decoded, err := Unmarshal(der)
	require.NoError(t, err)
	require.IsType(t, RSA{}, decoded)
	assert.Equal(t, types.RSA, decoded.Algorithm())
	assert.Equal(t, key, decoded)
}

func TestUnmarshalDSA(t *testing.T) {
	key := DSA{
		Params: keys.DSAParams{P: big.NewInt(7879), Q: big.NewInt(101), G: big.NewInt(170)},
		Key:    keys.DSAPublicKey{Y: big.NewInt(42)},
	}

	der, err := Marshal(key)
	require.NoError(t, err)

	decoded, err := Unmarshal(der)
	require.NoError(t, err)
	require.IsType(t, DSA{}, decoded)
	assert.Equal(t, key, decoded)
}

func TestUnmarshalEC(t *testing.T) {
	point := testPoint()
	key := EC{
		Params: keys.ECNamedCurve{OID: types.OidCurveSecp256r1},
		Point:  point,
	}

	der, err := Marshal(key)
	require.NoError(t, err)

	decoded, err := Unmarshal(der)
	require.NoError(t, err)
	require.IsType(t, EC{}, decoded)

	got := decoded.(EC)
	assert.Equal(t, keys.ECParameters(keys.ECNamedCurve{OID: types.OidCurveSecp256r1}), got.Params)
	assert.Len(t, got.Point, 65)
	assert.True(t, bytes.Equal(point, got.Point))

	// the bit string payload is the point itself, not a nested value
	assert.True(t, bytes.Contains(der, point))
}

func TestUnmarshalIdempotent(t *testing.T) {
	key := RSA{Key: keys.RSAPublicKey{N: big.NewInt(3233), E: big.NewInt(17)}}

	der, err := Marshal(key)
	require.NoError(t, err)

	decoded, err := Unmarshal(der)
	require.NoError(t, err)

	der2, err := Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, der, der2)
}

func TestUnmarshalUnknownAlgorithm(t *testing.T) {
	// Ed25519 key: not one of RSA/DSA/EC
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: types.AlgorithmIdentifier{
			Algorithm: asn1.ObjectIdentifier{1, 3, 101, 112},
		},
		PublicKey: asn1.BitString{Bytes: bytes.Repeat([]byte{0xAB}, 32), BitLength: 256},
	})
	require.NoError(t, err)

	_, err = Unmarshal(der)
	require.Error(t, err)
	assert.Equal(t, "Couldn't parse key", err.Error())
}

func TestUnmarshalLeftover(t *testing.T) {
	der, err := Marshal(RSA{Key: keys.RSAPublicKey{N: big.NewInt(3233), E: big.NewInt(17)}})
	require.NoError(t, err)

	_, err = Unmarshal(append(der, 0x00))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X509: key with non empty leftover")

	_, err = Unmarshal(der[:len(der)-1])
	assert.Error(t, err)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Error(t, err)
}
