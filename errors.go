package kuznyechik

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrConfig is matched by every configuration error: bad key, IV, mesh
	// section or tag sizes and unknown modes.
	ErrConfig = errors.New("kuznyechik: invalid configuration")

	// ErrUsage is matched by every error caused by calling context methods
	// out of sequence.
	ErrUsage = errors.New("kuznyechik: invalid usage")

	// ErrFinalized is returned when data is fed to a finalized context.
	ErrFinalized = fmt.Errorf("%w: context is finalized", ErrUsage)

	// ErrStreaming is returned when a context is re-initialized while a
	// stream is in progress.  Call Reset or Final first.
	ErrStreaming = fmt.Errorf("%w: context is streaming", ErrUsage)

	// ErrMeshAfterUpdate is returned when the mesh section is configured
	// after data has been processed.
	ErrMeshAfterUpdate = fmt.Errorf("%w: mesh section must be set before the first update", ErrUsage)

	// ErrNotFullBlocks is returned by Final in ECB and CBC mode when the total
	// input is not a multiple of the block size.
	ErrNotFullBlocks = fmt.Errorf("%w: input not a multiple of the block size", ErrUsage)
)

// KeySizeError reports a key whose length is not [KeySize] (or
// [XTSKeySize] for XTS).
type KeySizeError int

func (k KeySizeError) Error() string {
	return "kuznyechik: invalid key size " + strconv.Itoa(int(k))
}

func (KeySizeError) Is(target error) bool { return target == ErrConfig }

// IVSizeError reports an IV whose length does not suit the mode.
type IVSizeError int

func (n IVSizeError) Error() string {
	return "kuznyechik: invalid IV size " + strconv.Itoa(int(n))
}

func (IVSizeError) Is(target error) bool { return target == ErrConfig }

// MeshSectionError reports a mesh section that is not a positive multiple of
// [BlockSize].
type MeshSectionError int

func (n MeshSectionError) Error() string {
	return "kuznyechik: invalid mesh section size " + strconv.Itoa(int(n))
}

func (MeshSectionError) Is(target error) bool { return target == ErrConfig }

// TagSizeError reports a MAC tag length outside 1..[BlockSize].
type TagSizeError int

func (n TagSizeError) Error() string {
	return "kuznyechik: invalid tag size " + strconv.Itoa(int(n))
}

func (TagSizeError) Is(target error) bool { return target == ErrConfig }

// ModeError reports an unknown [Mode].
type ModeError Mode

func (m ModeError) Error() string {
	return "kuznyechik: unsupported mode " + Mode(m).String()
}

func (ModeError) Is(target error) bool { return target == ErrConfig }
