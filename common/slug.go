package common

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// MaxSlugAttempts bounds the numeric suffix search in UniqueSlug.
const MaxSlugAttempts = 20

func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// UniqueSlug returns base, or base-N for the first N whose taken() reports false.
func UniqueSlug(base string, taken func(candidate string) (bool, error)) (string, error) {
	used, err := taken(base)
	if err != nil {
		return "", err
	}
	if !used {
		return base, nil
	}

	for i := 1; i <= MaxSlugAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}
