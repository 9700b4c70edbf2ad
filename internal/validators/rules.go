// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/nyaruka/phonenumbers"
)

// Limits shared by user and item payloads.
const (
	minPasswordLength = 8
	// bcrypt rejects input past 72 bytes
	maxPasswordLength = 72

	maxNameLength        = 50
	maxPhoneLength       = 15
	maxItemNameLength    = 100
	maxDescriptionLength = 500
	maxCategoryLength    = 50
	maxLocationLength    = 100
	maxEmailLength       = 254
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

var (
	errNotPositive   = errors.New("must be greater than 0")
	errInvalidPhone  = errors.New("must be a valid phone number")
	errNotImageURL   = errors.New("URL must point to an image (.jpg, .jpeg, .png, .gif)")
	errNotHTTPURL    = errors.New("must be a valid http or https URL")
	errBlankImageURL = errors.New("image URLs cannot be blank")
)

// positive accepts nil and values strictly greater than zero.
var positive = validation.By(func(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	f, err := validation.ToFloat(value)
	if err != nil {
		return err
	}
	if f <= 0 {
		return errNotPositive
	}
	return nil
})

// phoneNumber checks the E.164-like shape and, for numbers with a country
// prefix, that libphonenumber can parse them.
var phoneNumber = validation.By(func(value any) error {
	value, isNil := validation.Indirect(value)
	s, _ := value.(string)
	if isNil || s == "" {
		return nil
	}
	if !phonePattern.MatchString(s) {
		return errInvalidPhone
	}
	if strings.HasPrefix(s, "+") {
		if _, err := phonenumbers.Parse(s, ""); err != nil {
			return errInvalidPhone
		}
	}
	return nil
})

// imageURL accepts absolute http(s) URLs whose path ends with an image
// extension.
var imageURL = validation.By(func(value any) error {
	value, isNil := validation.Indirect(value)
	s, _ := value.(string)
	if isNil || s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errNotHTTPURL
	}

	ext := strings.ToLower(path.Ext(u.Path))
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return errNotImageURL
})

// imageList rejects blank entries in an item's image list.
var imageList = validation.By(func(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	images, ok := value.([]string)
	if !ok {
		return fmt.Errorf("unexpected images type %T", value)
	}
	for _, image := range images {
		if strings.TrimSpace(image) == "" {
			return errBlankImageURL
		}
	}
	return nil
})

// fieldRule pairs a JSON field name with its rules so that validation can
// be restricted to a subset of fields.
type fieldRule struct {
	name  string
	rules *validation.FieldRules
}

func validateFields(structPtr any, all []fieldRule, fields ...string) error {
	selected := make([]*validation.FieldRules, 0, len(all))
	if len(fields) == 0 {
		for _, f := range all {
			selected = append(selected, f.rules)
		}
	} else {
		for _, name := range fields {
			rule, ok := findRule(all, name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, name)
			}
			selected = append(selected, rule)
		}
	}

	if err := validation.ValidateStruct(structPtr, selected...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func findRule(all []fieldRule, name string) (*validation.FieldRules, bool) {
	for _, f := range all {
		if f.name == name {
			return f.rules, true
		}
	}
	return nil, false
}
