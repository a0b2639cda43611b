package pmatch

import (
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

var (
	cultureOnce    sync.Once
	currentCulture language.Tag
)

// Culture returns the language of the user environment, as detected from
// the process environment. If detection fails, en-US is assumed.
// Detection is performed once.
func Culture() language.Tag {
	cultureOnce.Do(func() {
		currentCulture = language.AmericanEnglish
		userLocale, err := jj.DetectIETF()
		if err != nil {
			CT().Errorf("%v", err)
			CT().Infof("pmatch sets default user locale %v", currentCulture)
			return
		}
		tag, err := language.Parse(userLocale)
		if err != nil || tag == language.Und {
			CT().Infof("pmatch cannot use user locale %q, sets default %v", userLocale, currentCulture)
			return
		}
		CT().Infof("pmatch detected user locale %v", tag)
		currentCulture = tag
	})
	return currentCulture
}
