// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface, an alternative to Ristretto255 for deployments
// whose verifiers live inside BN254 SNARK circuits.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems and privacy-preserving applications.
//
// Points come from gnark-crypto; scalars are saferith naturals reduced
// modulo the subgroup order. Both use 32-byte little-endian encodings so
// they fit the same wire format as Ristretto255.
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
// Create a BJJ group and use it with the blind signature scheme:
//
//	g := &bjj.BJJ{}
//	scheme, err := blind.New(g)
//
// The BJJ type implements [group.Group] and can be used anywhere a Group
// is required.
//
// # Security
//
// The curve has cofactor 8. Point.SetBytes rejects every point outside
// the prime-order subgroup and every encoding that does not re-encode to
// the same bytes; Scalar.SetBytes rejects values at or above the order.
package bjj
