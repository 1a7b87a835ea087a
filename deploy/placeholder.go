// Copyright (c) Microsoft. All rights reserved.

package deploy

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// SubstitutePlaceholders replaces each {key} token in s with values[key].
// Tokens without a value are left verbatim. Substituted values are not
// scanned again.
func SubstitutePlaceholders(s string, values map[string]string) string {
	if len(values) == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		if v, ok := values[token[1:len(token)-1]]; ok {
			return v
		}
		return token
	})
}
