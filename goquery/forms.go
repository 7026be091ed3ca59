package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webml"
)

// ExtractForms collects all forms below scope in document order.
// A missing action targets the page itself (rawBase). Methods outside
// GET/POST/PUT/DELETE become GET. Only named input, select and textarea
// controls are kept.
func ExtractForms(scope *goquery.Selection, base *url.URL, rawBase string) []webml.Form {
	forms := []webml.Form{}

	scope.Find("form").Each(func(_ int, form *goquery.Selection) {
		target := strings.TrimSpace(form.AttrOr("action", ""))
		if target == "" {
			target = rawBase
		}

		fields := []webml.FormField{}
		form.Find("input[name], select[name], textarea[name]").Each(func(_ int, el *goquery.Selection) {
			name := strings.TrimSpace(el.AttrOr("name", ""))
			if name == "" {
				return
			}

			typ := goquery.NodeName(el)
			if typ == "input" {
				typ = strings.ToLower(strings.TrimSpace(el.AttrOr("type", "")))
				if typ == "" {
					typ = "text"
				}
			}

			_, required := el.Attr("required")
			fields = append(fields, webml.FormField{
				Name:     name,
				Type:     typ,
				Required: required,
			})
		})

		forms = append(forms, webml.Form{
			Action: resolveURL(base, target),
			Method: webml.ParseMethod(form.AttrOr("method", "")),
			Fields: fields,
		})
	})

	return forms
}
