package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
)

// ReadAll parses every schedule line of r. Leading indentation is dropped,
// then blank lines and lines starting with '#' are skipped. Entry IDs are
// "line:N" with N counted from 1.
//
// Lines that fail to parse are reported together as one joined error of
// *OperationError values carrying the line number; the entries that did
// parse are still returned. A read error or cancelled ctx stops reading.
func ReadAll(ctx context.Context, r io.Reader, p Parser) ([]Entry, error) {
	if p == nil {
		p = DefaultParser
	}

	var (
		entries []Entry
		errs    []error
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return entries, err
		}
		lineNo++

		line := strings.TrimLeft(strings.TrimRight(scanner.Text(), "\r"), " \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseEntry(p, fmt.Sprintf("line:%d", lineNo), line)
		if err != nil {
			errs = append(errs, cterrors.NewOperationError("source", "ReadAll", err).
				WithContext(fmt.Sprintf("line %d", lineNo)))
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, cterrors.NewOperationError("source", "ReadAll", err)
	}

	return entries, errors.Join(errs...)
}
