package paint

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// NoticeKind classifies a user-visible notice.
type NoticeKind int

const (
	// NoticeAdvisory is a recoverable warning; the operation still happened.
	NoticeAdvisory NoticeKind = iota
	// NoticeSuccess confirms a completed action.
	NoticeSuccess
	// NoticeFailure reports a recoverable failure the user may retry.
	NoticeFailure
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeAdvisory:
		return "advisory"
	case NoticeSuccess:
		return "success"
	case NoticeFailure:
		return "failure"
	}
	return fmt.Sprintf("NoticeKind(%d)", int(k))
}

// Message keys. Each key is also the English text.
const (
	MsgFillTooLarge = "area too large to fill at once, try a smaller region."
	MsgSaved        = "Your masterpiece has been saved to your device!"
	MsgSaveFailed   = "Oops! Couldn't save your artwork. Try again?"
)

// Notice is a message for the UI to show, typically as a toast.
type Notice struct {
	Kind NoticeKind
	Key  string
	Text string
}

// NoticeHandler receives notices. It is called synchronously while the
// session lock is held and must not call back into the session.
type NoticeHandler func(Notice)

var translations = []struct {
	tag language.Tag
	key string
	msg string
}{
	{language.Spanish, MsgFillTooLarge, "El área es demasiado grande para rellenar de una vez. Intenta en una zona más pequeña."},
	{language.Spanish, MsgSaved, "¡Tu obra maestra se ha guardado en tu dispositivo!"},
	{language.Spanish, MsgSaveFailed, "¡Ups! No se pudo guardar tu dibujo. ¿Lo intentamos de nuevo?"},
}

// Languages lists the languages notices are translated into.
var Languages = []language.Tag{language.English, language.Spanish}

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(Languages)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{MsgFillTooLarge, MsgSaved, MsgSaveFailed} {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("paint: message catalog: %v", err))
		}
	}
	for _, t := range translations {
		if err := b.SetString(t.tag, t.key, t.msg); err != nil {
			panic(fmt.Sprintf("paint: message catalog: %v", err))
		}
	}
	return b
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value or a list of language tags, defaulting to English.
func MatchLanguage(accept ...string) language.Tag {
	tag, _ := language.MatchStrings(matcher, accept...)
	base, _ := tag.Base()
	for _, l := range Languages {
		if b, _ := l.Base(); b == base {
			return l
		}
	}
	return language.English
}

// newPrinter returns a printer over the notice catalog.
func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// newNotice localizes key with p.
func newNotice(p *message.Printer, kind NoticeKind, key string) Notice {
	return Notice{Kind: kind, Key: key, Text: p.Sprintf(key)}
}
