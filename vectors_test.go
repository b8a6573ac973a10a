package kuznyechik

import "encoding/hex"

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Key and plaintext from GOST R 34.12-2015 A.1 and GOST R 34.13-2015 A.1.
var (
	testKey = mustDecodeHex("8899aabbccddeeff0011223344556677" +
		"fedcba98765432100123456789abcdef")

	testPlaintext = mustDecodeHex("1122334455667700ffeeddccbbaa9988" +
		"00112233445566778899aabbcceeff0a" +
		"112233445566778899aabbcceeff0a00" +
		"2233445566778899aabbcceeff0a0011")

	// testPlaintextACPKM extends testPlaintext for the CTR-ACPKM test vector of
	// R 1323565.1.017-2018.
	testPlaintextACPKM = append(append([]byte(nil), testPlaintext...), mustDecodeHex(
		"33445566778899aabbcceeff0a001122"+
			"445566778899aabbcceeff0a00112233"+
			"5566778899aabbcceeff0a0011223344")...)

	testCTRNonce = mustDecodeHex("1234567890abcef0")

	// testIV is the GOST R 34.13-2015 IV truncated to one block.
	testIV = mustDecodeHex("1234567890abcef0a1b2c3d4e5f00112")
)

var (
	wantECB = mustDecodeHex("7f679d90bebc24305a468d42b9d4edcd" +
		"b429912c6e0032f9285452d76718d08b" +
		"f0ca33549d247ceef3f5a5313bd4b157" +
		"d0b09ccde830b9eb3a02c4c5aa8ada98")

	wantCTR = mustDecodeHex("f195d8bec10ed1dbd57b5fa240bda1b8" +
		"85eee733f6a13e5df33ce4b33c45dee4" +
		"a5eae88be6356ed3d5e877f13564a3a5" +
		"cb91fab1f20cbab6d1c6d15820bdba73")

	wantCTRACPKM = mustDecodeHex("f195d8bec10ed1dbd57b5fa240bda1b8" +
		"85eee733f6a13e5df33ce4b33c45dee4" +
		"4bceeb8f646f4c55001706275e85e800" +
		"587c4df568d094393e4834afd0805046" +
		"cf30f57686aeece11cfc6c316b8a896e" +
		"dffd07ec813636460c4f3b743423163e" +
		"6409a9c282fac8d469d221e7fbd6de5d")

	// wantACPKMMaster is ACPKM-Master(K, 768, 3): three K || K1 pairs.
	wantACPKMMaster = mustDecodeHex("0cabf1f2efbc4ac16048df1a24c605b2" +
		"c0d1673d7586a8ec0dd42c45a4f95bae" +
		"0f2e2617e47148680fc3e6178df2c137" +
		"c9dda89cffa491feadd9b3eab703bb31" +
		"bc7e927f0494729f51b49d3df9c94608" +
		"00fbbcf5edee610ea02f01093c7bc742" +
		"d7d6271501b177775263c2a3495a8318" +
		"a81c79a04f29660ea3fda874c630799e" +
		"142c577914fea90d3bc2502e833685d9")

	wantOFB = mustDecodeHex("81800a59b1842b24ff1f795e897abd95" +
		"779146db2d93a94ed93cf68b32397f19" +
		"e93c9e57441d870545f24036a58ceea3" +
		"cf3f0061d56423545b960d864cc868da")

	wantCBC = mustDecodeHex("689972d4a085fa4d90e52e3d6d7dcc27" +
		"abf170b2b226c3010ccfa136d659cdaa" +
		"ca719272ab1d438e15507d521ecd5522" +
		"e01108ff8d9d3a6d8ca2a533fa614e71")

	wantCFB = mustDecodeHex("81800a59b1842b24ff1f795e897abd95" +
		"68c1b99c4df59cc7951e3739b5b3cdbf" +
		"073f4dd2d6deb3cfb026545f7af1d8e8" +
		"e1c852e9a8567162dbb5da7f66dea926")

	wantOMAC = mustDecodeHex("336f4d296059fbe3")

	// OMAC-ACPKM tags from R 1323565.1.017-2018 A.4.1 and A.4.2.
	wantOMACACPKM1 = mustDecodeHex("b5367f47b62b995eeb2a648c5843145e")
	wantOMACACPKM2 = mustDecodeHex("fbb8dcee45bea67c35f58c5700898e5d")
)
