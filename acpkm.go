package kuznyechik

import "fmt"

// DefaultMasterSection is the ACPKM-Master section size T* in bytes (768
// bits) used when none is configured.
const DefaultMasterSection = 96

// acpkmD is the constant D = 0x80 || 0x81 || ... || 0x9f that is encrypted
// under the current key to obtain the next one.
var acpkmD = func() (d [KeySize]byte) {
	for i := range d {
		d[i] = 0x80 + byte(i)
	}
	return d
}()

// acpkmMasterIV is the initial counter block of the ACPKM-Master stream,
// 1^{n/2} || 0^{n/2}.
var acpkmMasterIV = block{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// mesh advances rk to the round keys of ACPKM(K), where K is the key rk was
// expanded from.  The new key never leaves this function.
func (rk *roundKeys) mesh() {
	var next [KeySize]byte
	rk.nextKey(&next)
	rk.expand(&next)
	clear(next[:])
}

func (rk *roundKeys) nextKey(next *[KeySize]byte) {
	for i := 0; i < KeySize; i += BlockSize {
		encryptBlock(rk, (*block)(next[i:]), (*block)(acpkmD[i:]))
	}
}

// Mesh returns the key that follows key under the ACPKM transformation.
// The result is always [KeySize] bytes.
func Mesh(key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	var rk roundKeys
	rk.expand((*[KeySize]byte)(key))
	defer rk.wipe()

	next := make([]byte, KeySize)
	rk.nextKey((*[KeySize]byte)(next))
	return next, nil
}

// ACPKMMaster derives n bytes of key material from key with the ACPKM-Master
// procedure: the CTR-ACPKM keystream with section size section, started
// from the counter block 0xff..ff || 0x00..00.  The section must be a
// positive multiple of [BlockSize].
func ACPKMMaster(key []byte, section, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative key material length %d", ErrConfig, n)
	}

	c, err := NewEncrypter(CTRACPKM, key, acpkmMasterIV[:])
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	if err := c.SetMeshSection(section); err != nil {
		return nil, err
	}

	km := make([]byte, n)
	c.XORKeyStream(km, km)
	return km, nil
}
