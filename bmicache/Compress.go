package bmicache

import (
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// StoreCompressed optionally compresses a BMI at rest with LZ4 (matching
// ppb's action/Action.go default of COMPRESSION_FORMAT_LZ4 /
// COMPRESSION_LEVEL_FAST for cached artifacts) before copying it into the
// cache directory under name+".lz4". BMIs are read far more often than
// written and LZ4 decompression is cheap enough not to matter on the lookup
// path, so this is opt-in rather than the default BmiPath layout.
func StoreCompressed(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	zw := lz4.NewWriter(dst)
	defer zw.Close()

	_, err = io.Copy(zw, src)
	return err
}

// LoadCompressed decompresses a BMI previously stored with StoreCompressed.
func LoadCompressed(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	zr := lz4.NewReader(src)
	_, err = io.Copy(dst, zr)
	return err
}
