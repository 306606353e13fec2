package datefmt

import "errors"

// ErrUnknownFormat indicates that a format name is not part of the catalog.
var ErrUnknownFormat = errors.New("datefmt: unknown date format")

// ErrUnsupportedLocale indicates that a locale cannot be mapped to a LocaleTag.
var ErrUnsupportedLocale = errors.New("datefmt: unsupported locale")

// ErrInvalidPhrasebook marks phrasebook payloads missing required word forms.
var ErrInvalidPhrasebook = errors.New("datefmt: invalid phrasebook")

// ErrUnparseableDate is returned by helpers that must report a text that
// does not match its format. The conversion methods report false instead.
var ErrUnparseableDate = errors.New("datefmt: text does not match date format")
