package kuznyechik

import "github.com/etclab/aes256"

// NewRandomKey returns a new random [KeySize]-byte key.  Kuznyechik keys
// have the same size as AES-256 keys, so the aes256 generator is used.
func NewRandomKey() []byte {
	return aes256.NewRandomKey()
}

// NewRandomIV returns a new random [BlockSize]-byte IV for CBC, CFB and OFB.
func NewRandomIV() []byte {
	return aes256.NewRandomIV()[:BlockSize]
}

// NewRandomNonce returns a new random [NonceSize]-byte CTR nonce.
func NewRandomNonce() []byte {
	return aes256.NewRandomIV()[:NonceSize]
}

// CopyIV returns a copy of the [BlockSize]-byte iv.
func CopyIV(iv []byte) []byte {
	return aes256.CopyIV(iv)
}

// AddIV adds n to the [BlockSize]-byte iv, treating it as a big-endian
// integer that wraps around.  iv is updated in place and returned.
func AddIV(iv []byte, n int) []byte {
	return aes256.AddIV(iv, n)
}

// DecIV decrements iv by one.  iv is updated in place and returned.
func DecIV(iv []byte) []byte {
	return aes256.DecIV(iv)
}

// incCounter increments the counter block by one, big-endian with
// wraparound.  It runs once per keystream block and must not allocate.
func incCounter(ctr *block) {
	for i := BlockSize - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}

// EncryptCTR encrypts data in place in CTR mode.  iv is either a nonce or a
// full initial counter block.
func EncryptCTR(key, iv, data []byte) error {
	return xorCTR(key, iv, 0, data)
}

// DecryptCTR decrypts data in place in CTR mode.
func DecryptCTR(key, iv, data []byte) error {
	return xorCTR(key, iv, 0, data)
}

// EncryptCTRACPKM encrypts data in place in CTR-ACPKM mode, meshing the key
// every section bytes.
func EncryptCTRACPKM(key, iv []byte, section int, data []byte) error {
	return xorCTR(key, iv, section, data)
}

// DecryptCTRACPKM decrypts data in place in CTR-ACPKM mode.
func DecryptCTRACPKM(key, iv []byte, section int, data []byte) error {
	return xorCTR(key, iv, section, data)
}

func xorCTR(key, iv []byte, section int, data []byte) error {
	mode := CTR
	if section != 0 {
		mode = CTRACPKM
	}
	c, err := NewEncrypter(mode, key, iv)
	if err != nil {
		return err
	}
	defer c.Wipe()

	if mode == CTRACPKM {
		if err := c.SetMeshSection(section); err != nil {
			return err
		}
	}
	c.XORKeyStream(data, data)
	return nil
}

// Sum returns the tagLen-byte OMAC of msg under key.
func Sum(key, msg []byte, tagLen int) ([]byte, error) {
	m, err := NewMAC(key)
	if err != nil {
		return nil, err
	}
	if err := m.Update(msg); err != nil {
		return nil, err
	}
	return m.Final(tagLen)
}
