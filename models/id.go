package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entity ID prefixes. Every primary key is a prefixed random identifier
// so an ID is recognizable on its own (e.g. in logs or URLs).
const (
	PrefixUser            = "usr"
	PrefixSocialLink      = "sml"
	PrefixSkill           = "skl"
	PrefixProject         = "prj"
	PrefixScreenshot      = "scr"
	PrefixExperience      = "exp"
	PrefixEducation       = "edu"
	PrefixCertification   = "crt"
	PrefixBlogPost        = "pst"
	PrefixKeyFact         = "fct"
	PrefixContactMessage  = "msg"
	PrefixResumeDownload  = "rsd"
	PrefixSiteSetting     = "set"
	PrefixTestimonial     = "tsm"
	PrefixPageVisit       = "pgv"
	PrefixSectionVisit    = "scv"
	PrefixMediaAsset      = "med"
	PrefixAppSetting      = "aps"
	PrefixNavigationPrefs = "nav"
)

// NewID returns a prefixed random identifier, e.g. "skl_6f1d2c0a...".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(uuid.NewString(), "-", ""))
}
