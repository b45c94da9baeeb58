package contact

import (
	"errors"

	"github.com/ncruces/zenity"
)

const dialogTitle = "Contact"

// Desktop asks for the form with native entry dialogs.
type Desktop struct{}

// Ask prompts for each field, repeating a field with its error until it passes.
func (Desktop) Ask() (Form, error) {
	var f Form
	prompts := []struct {
		field string
		label string
		dst   *string
	}{
		{FieldName, "Your name", &f.Name},
		{FieldEmail, "Your email", &f.Email},
		{FieldMessage, "Your message", &f.Message},
	}
	for _, p := range prompts {
		label := p.label
		for {
			v, err := zenity.Entry(label, zenity.Title(dialogTitle), zenity.EntryText(*p.dst))
			if errors.Is(err, zenity.ErrCanceled) {
				return Form{}, ErrCanceled
			}
			if err != nil {
				return Form{}, err
			}
			*p.dst = v
			var fe *FieldError
			if !errors.As(ValidateField(p.field, v), &fe) {
				break
			}
			label = p.label + "\n\n" + fe.Message
		}
	}
	return f, nil
}

func (Desktop) Success(msg string) error {
	return zenity.Notify(msg, zenity.Title(dialogTitle), zenity.InfoIcon)
}

func (Desktop) Failure(msg string) error {
	return zenity.Error(msg, zenity.Title(dialogTitle))
}
