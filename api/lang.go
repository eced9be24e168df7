package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

type translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// requestTranslator follows the lang query first and then Accept-Language
func requestTranslator(c *gin.Context) translator {
	langs := []string{}
	if lang := c.Query("lang"); lang != "" {
		langs = append(langs, lang)
	}
	if accept := c.GetHeader("Accept-Language"); accept != "" {
		langs = append(langs, accept)
	}

	return translator{
		localizer: utils.NewLocalizer(langs...),
		tag:       utils.MatchLanguage(langs...),
	}
}

func (t translator) text(id, fallback string, data map[string]string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if nil != err {
		log.WithField("message", id).Warn(err)
		return fallback
	}
	return msg
}

func (t translator) regionName(r region.Region) string {
	return t.text("region_"+r.ID, r.Name, nil)
}

func (t translator) inRegion(r region.Region) string {
	return t.text("region_in_"+r.ID, r.Name, nil)
}
