package kuznyechik

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"testing"

	"github.com/etclab/aes256"
)

func TestTransforms(t *testing.T) {
	// GOST R 34.12-2015 A.2.1 and A.2.3.
	s := mustDecodeHex("ffeeddccbbaa99881122334455667700")
	for i := range s {
		s[i] = pi[s[i]]
	}
	if want := mustDecodeHex("b66cd8887d38e8d77765aeea0c9a7efc"); !bytes.Equal(s, want) {
		t.Errorf("S: got %x, want %x", s, want)
	}

	var l block
	copy(l[:], mustDecodeHex("64a59400000000000000000000000000"))
	lTransform(&l)
	if want := mustDecodeHex("d456584dd0e3e84cc3166e4b7fa2890d"); !bytes.Equal(l[:], want) {
		t.Errorf("L: got %x, want %x", l, want)
	}

	lInvTransform(&l)
	if want := mustDecodeHex("64a59400000000000000000000000000"); !bytes.Equal(l[:], want) {
		t.Errorf("L^-1: got %x, want %x", l, want)
	}
}

func TestPiInverse(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := piInv[pi[v]]; got != byte(v) {
			t.Fatalf("piInv[pi[%#02x]] = %#02x", v, got)
		}
	}
}

func TestKeySchedule(t *testing.T) {
	// GOST R 34.12-2015 A.2.4.
	want := []string{
		"8899aabbccddeeff0011223344556677",
		"fedcba98765432100123456789abcdef",
		"db31485315694343228d6aef8cc78c44",
		"3d4553d8e9cfec6815ebadc40a9ffd04",
		"57646468c44a5e28d3e59246f429f1ac",
		"bd079435165c6432b532e82834da581b",
		"51e640757e8745de705727265a0098b1",
		"5a7925017b9fdd3ed72a91a22286f984",
		"bb44e25378c73123a5f32f73cdb6e517",
		"72e9dd7416bcf45b755dbaa88e4a4043",
	}

	var rk roundKeys
	rk.expand((*[KeySize]byte)(testKey))
	for i, w := range want {
		if !bytes.Equal(rk[i][:], mustDecodeHex(w)) {
			t.Errorf("K_%d: got %x, want %s", i+1, rk[i], w)
		}
	}

	rk.wipe()
	if rk != (roundKeys{}) {
		t.Fatal("wipe left key material behind")
	}
}

func TestEncryptBlock(t *testing.T) {
	c, err := NewCipher(testKey)
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}

	ct := make([]byte, BlockSize)
	c.Encrypt(ct, testPlaintext[:BlockSize])
	if !bytes.Equal(ct, wantECB[:BlockSize]) {
		t.Fatalf("expected Encrypt to produce %x, got %x", wantECB[:BlockSize], ct)
	}

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	if !bytes.Equal(pt, testPlaintext[:BlockSize]) {
		t.Fatalf("expected Decrypt to produce %x, got %x", testPlaintext[:BlockSize], pt)
	}
}

func TestBlockRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		key := aes256.NewRandomKey()
		var rk roundKeys
		rk.expand((*[KeySize]byte)(key))

		var b, ct, pt block
		copy(b[:], aes256.NewRandomIV())
		encryptBlock(&rk, &ct, &b)
		decryptBlock(&rk, &pt, &ct)
		if pt != b {
			t.Fatalf("round trip #%d: key %x: got %x, want %x", i, key, pt, b)
		}

		// in place
		encryptBlock(&rk, &b, &b)
		if b != ct {
			t.Fatalf("in-place encryption #%d: got %x, want %x", i, b, ct)
		}
	}
}

func TestCipherBlockInterop(t *testing.T) {
	// The crypto/cipher CTR over the adapter must agree with the native
	// CTR: both increment the whole counter block big-endian.
	c, err := NewCipher(testKey)
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	iv := make([]byte, BlockSize)
	copy(iv, testCTRNonce)

	got := make([]byte, len(testPlaintext))
	cipher.NewCTR(c, iv).XORKeyStream(got, testPlaintext)
	if !bytes.Equal(got, wantCTR) {
		t.Fatalf("cipher.NewCTR: got %x, want %x", got, wantCTR)
	}

	got = make([]byte, len(testPlaintext))
	cipher.NewCBCEncrypter(c, testIV).CryptBlocks(got, testPlaintext)
	if !bytes.Equal(got, wantCBC) {
		t.Fatalf("cipher.NewCBCEncrypter: got %x, want %x", got, wantCBC)
	}
}

func TestNewCipherKeySize(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := NewCipher(make([]byte, n))
		var kse KeySizeError
		if !errors.As(err, &kse) || int(kse) != n {
			t.Errorf("NewCipher(%d-byte key): got %v, want KeySizeError(%d)", n, err, n)
		}
		if !errors.Is(err, ErrConfig) {
			t.Errorf("NewCipher(%d-byte key): error %v is not ErrConfig", n, err)
		}
	}
}

func TestCipherShortBlockPanics(t *testing.T) {
	c, err := NewCipher(testKey)
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected Encrypt of a short block to panic")
		}
	}()
	c.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize-1))
}

func BenchmarkEncryptBlock(b *testing.B) {
	var rk roundKeys
	rk.expand((*[KeySize]byte)(testKey))
	var x block
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		encryptBlock(&rk, &x, &x)
	}
}

func BenchmarkDecryptBlock(b *testing.B) {
	var rk roundKeys
	rk.expand((*[KeySize]byte)(testKey))
	var x block
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		decryptBlock(&rk, &x, &x)
	}
}
