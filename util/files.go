package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DirExist returns true if dir exists and is a directory. A regular file at
// dir returns false.
func DirExist(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// RenameFileWithNumber inserts "_number" in front of the extension of
// fileName, so "out.json" becomes "out_2.json". A name without an extension
// gets the number appended. Dots in directory names are not extensions.
func RenameFileWithNumber(fileName string, number int) string {
	dir, base := filepath.Split(fileName)

	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		dot = len(base)
	}

	return dir + base[:dot] + "_" + strconv.Itoa(number) + base[dot:]
}

// NextAvailableFileName returns fileName if nothing exists there. Otherwise,
// it returns the first RenameFileWithNumber(fileName, n), with n counting up
// from 1, that does not exist.
func NextAvailableFileName(fileName string) (string, error) {
	name := fileName

	for n := 1; ; n++ {
		_, err := os.Stat(name)
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}

		if err != nil {
			return "", err
		}

		name = RenameFileWithNumber(fileName, n)
	}
}
