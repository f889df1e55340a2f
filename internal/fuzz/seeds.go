package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// literalSeeds covers every escape family plus the common failures.
var literalSeeds = []string{
	``,
	`""`,
	`"hello"`,
	`"a\nb" "c"`,
	`"tab\there" ; comment`,
	`"\x41;\x3bb;"`,
	`"\x1F600;"`,
	"\"line one\\\n   continued\"",
	"\"crlf\\  \r\n  next\"",
	"; only a comment\n",
	`"unterminated`,
	`"bad \q escape"`,
	`"\xD800;"`,
	`"\x110000;"`,
	`not-a-string "after"`,
	"\"mixed \\\"quotes\\\" and \\\\ slashes\"",
	"\"\xff\"",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range literalSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.str файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".str" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
