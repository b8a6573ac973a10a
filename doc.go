// Package kuznyechik implements the Kuznyechik ("Grasshopper") block cipher
// from:
//
//	GOST R 34.12-2015. "Information technology. Cryptographic data security.
//	Block ciphers."
//
// together with the modes of operation of GOST R 34.13-2015 (ECB, CBC, CFB,
// OFB, CTR, and the OMAC message authentication code) and the key meshing
// extension of R 1323565.1.017-2018 (CTR-ACPKM, OMAC-ACPKM, ACPKM-Master).
// See also [RFC 7801] and [RFC 8645].
//
// # Streams
//
// A [CipherContext] is one encryption or decryption stream.  It is created
// with [NewEncrypter] or [NewDecrypter], fed with [CipherContext.Update] and
// closed with [CipherContext.Final].  ECB and CBC require the total input to
// be a whole number of blocks; the other modes accept any length.  For
// CTR-ACPKM, [CipherContext.SetMeshSection] sets how many bytes are
// processed under each key before the key is advanced:
//
//	K_{i+1} := E_{K_i}(D_1) || E_{K_i}(D_2),  D = 0x80 || 0x81 || ... || 0x9f
//
// Meshing always happens on a block boundary, and the counter keeps running
// across it.
//
// # MAC
//
// [NewMAC] returns an OMAC; with [WithMeshSection] it returns OMAC-ACPKM,
// whose keys and K1 subkeys are drawn from the ACPKM-Master stream (see
// [ACPKMMaster]) one section at a time.
//
// Contexts are not safe for concurrent use.  No part of this package is
// constant-time.
//
// [RFC 7801]: https://www.rfc-editor.org/rfc/rfc7801
// [RFC 8645]: https://www.rfc-editor.org/rfc/rfc8645
package kuznyechik
