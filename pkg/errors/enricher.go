package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"syscall"
)

// Enrich wraps err as an ActionableError, categorizing it and attaching
// suggestions. path may be empty when no single file is involved. A nil
// err returns nil.
func Enrich(err error, path string) error {
	if err == nil {
		return nil
	}

	category := categorize(err)

	return &actionableError{
		wrapped:      err,
		category:     category,
		suggestions:  suggestionsFor(category),
		affectedPath: path,
	}
}

// categorize maps an OS-level failure onto an ErrorCategory. Sentinel
// checks come first; message sniffing is the fallback for errors that
// arrive pre-flattened into strings.
func categorize(err error) ErrorCategory {
	switch {
	case stderrors.Is(err, fs.ErrPermission):
		return CategoryPermission
	case stderrors.Is(err, fs.ErrNotExist):
		return CategoryPath
	case stderrors.Is(err, syscall.ENAMETOOLONG):
		return CategoryNameLength
	case stderrors.Is(err, fs.ErrExist):
		return CategoryRename
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "permission denied"), strings.Contains(msg, "access is denied"):
		return CategoryPermission
	case strings.Contains(msg, "no such file"), strings.Contains(msg, "does not exist"):
		return CategoryPath
	case strings.Contains(msg, "file name too long"):
		return CategoryNameLength
	case strings.Contains(msg, "already exists"):
		return CategoryRename
	}

	return CategoryUnknown
}

// suggestionsFor returns user-facing remediation hints per category.
func suggestionsFor(category ErrorCategory) []string {
	switch category {
	case CategoryPermission:
		return []string{
			"Check that you have write permission on the folder and its files",
			"Close programs that may be holding the file open",
		}
	case CategoryPath:
		return []string{
			"Verify the folder path is spelled correctly",
			"The file may have been moved or deleted since scanning; re-run to pick up the current state",
		}
	case CategoryNameLength:
		return []string{
			"The date prefix pushed the name past the filesystem limit; shorten the original filename",
		}
	case CategoryRename:
		return []string{
			"Another program created a file with the target name during the run; re-run to resolve around it",
		}
	case CategoryUnknown:
		return nil
	}

	return nil
}
