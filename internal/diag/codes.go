package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Строковые литералы
	StrInfo             Code = 1100
	StrNotAString       Code = 1101
	StrInvalidEscape    Code = 1102
	StrUnknownEscape    Code = 1103
	StrInvalidCodepoint Code = 1104
	StrUnterminated     Code = 1105
	StrInvalidUTF8      Code = 1106

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOReadError     Code = 4002
	IOCacheError    Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	StrInfo:             "String literal information",
	StrNotAString:       "Not a string literal",
	StrInvalidEscape:    "Invalid escape sequence",
	StrUnknownEscape:    "Unknown escape character",
	StrInvalidCodepoint: "Hex escape is not a Unicode scalar value",
	StrUnterminated:     "Unterminated string literal",
	StrInvalidUTF8:      "Invalid UTF-8 in string literal",
	IOInfo:              "I/O information",
	IOLoadFileError:     "I/O load file error",
	IOReadError:         "I/O read error",
	IOCacheError:        "Decode cache error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1100 && ic < 1200:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
