package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseRegisterForm(t *testing.T) {
	req := postRequest(url.Values{
		"first_name": {"  Alice "}, "last_name": {" Smith"}, "email": {" Alice@Example.COM "},
		"password": {" secret password "}, "confirm_password": {" secret password "},
	})
	f := parseRegisterForm(req)
	assert.Equal(t, registerForm{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
		Password: " secret password ", Confirm: " secret password "}, f)
	assert.Empty(t, f.validate())
	assert.Equal(t, map[string]string{"first_name": "Alice", "last_name": "Smith", "email": "alice@example.com"}, f.stash())
}

func TestRegisterForm_validate(t *testing.T) {
	valid := registerForm{FirstName: "Al", LastName: "Li", Email: "a@b.co", Password: "12345678", Confirm: "12345678"}
	assert.Empty(t, valid.validate(), "boundary values are accepted")

	tbl := []struct {
		name   string
		modify func(f *registerForm)
		want   []string
	}{
		{"one letter first name", func(f *registerForm) { f.FirstName = "A" }, []string{msgFirstNameShort}},
		{"two runes non-ascii", func(f *registerForm) { f.FirstName = "Жо" }, nil},
		{"one letter last name", func(f *registerForm) { f.LastName = "L" }, []string{msgLastNameShort}},
		{"no at", func(f *registerForm) { f.Email = "a.b.co" }, []string{msgEmailInvalid}},
		{"no tld", func(f *registerForm) { f.Email = "a@localhost" }, []string{msgEmailInvalid}},
		{"space inside", func(f *registerForm) { f.Email = "a b@b.co" }, []string{msgEmailInvalid}},
		{"plus allowed", func(f *registerForm) { f.Email = "a+tag@b.co" }, nil},
		{"seven char password", func(f *registerForm) { f.Password, f.Confirm = "1234567", "1234567" }, []string{msgPasswordShort}},
		{"mismatch", func(f *registerForm) { f.Confirm = "87654321" }, []string{msgPasswordMismatch}},
		{"72 byte password", func(f *registerForm) { f.Password = strings.Repeat("x", 72); f.Confirm = f.Password }, nil},
		{"73 byte password", func(f *registerForm) { f.Password = strings.Repeat("x", 73); f.Confirm = f.Password },
			[]string{msgPasswordLong}},
		{"multibyte password over 72 bytes", func(f *registerForm) { f.Password = strings.Repeat("ж", 37); f.Confirm = f.Password },
			[]string{msgPasswordLong}},
		{"255 rune names", func(f *registerForm) { f.FirstName, f.LastName = strings.Repeat("ж", 255), strings.Repeat("a", 255) }, nil},
		{"long first name", func(f *registerForm) { f.FirstName = strings.Repeat("a", 256) }, []string{msgFirstNameLong}},
		{"long last name", func(f *registerForm) { f.LastName = strings.Repeat("a", 256) }, []string{msgLastNameLong}},
		{"long email", func(f *registerForm) { f.Email = strings.Repeat("a", 250) + "@b.com" }, []string{msgEmailLong}},
		{"everything wrong", func(f *registerForm) { *f = registerForm{Password: "x"} },
			[]string{msgFirstNameShort, msgLastNameShort, msgEmailInvalid, msgPasswordShort, msgPasswordMismatch}},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.modify(&f)
			assert.Equal(t, tt.want, f.validate())
		})
	}
}

func TestJobForm_validate(t *testing.T) {
	tbl := []struct {
		name string
		form jobForm
		want []string
	}{
		{"valid at boundaries", jobForm{Title: "ABCD", Description: "12345678901", Location: "X"}, nil},
		{"short title", jobForm{Title: "ABC", Description: "12345678901", Location: "X"}, []string{msgTitleShort}},
		{"short description", jobForm{Title: "ABCD", Description: "1234567890", Location: "X"}, []string{msgDescriptionShort}},
		{"no location", jobForm{Title: "ABCD", Description: "12345678901"}, []string{msgLocationEmpty}},
		{"all empty", jobForm{}, []string{msgTitleShort, msgDescriptionShort, msgLocationEmpty}},
		{"max title and location", jobForm{Title: strings.Repeat("ж", 255), Description: "12345678901", Location: strings.Repeat("a", 255)}, nil},
		{"long title", jobForm{Title: strings.Repeat("a", 256), Description: "12345678901", Location: "X"}, []string{msgTitleLong}},
		{"long location", jobForm{Title: "ABCD", Description: "12345678901", Location: strings.Repeat("a", 256)}, []string{msgLocationLong}},
		{"long description allowed", jobForm{Title: "ABCD", Description: strings.Repeat("a", 5000), Location: "X"}, nil},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.validate())
		})
	}

	t.Run("parse trims", func(t *testing.T) {
		f := parseJobForm(postRequest(url.Values{"title": {"  ABCD "}, "description": {" 12345678901 "}, "location": {"   "}}))
		assert.Equal(t, jobForm{Title: "ABCD", Description: "12345678901"}, f)
		assert.Equal(t, []string{msgLocationEmpty}, f.validate())
		assert.Equal(t, map[string]string{"title": "ABCD", "description": "12345678901", "location": ""}, f.values())
	})
}
