package embed

import "net/url"

// PlayerVars is the configuration bag passed to the widget.
type PlayerVars struct {
	Autoplay       bool   `koanf:"autoplay"`
	Controls       bool   `koanf:"controls"`
	ModestBranding bool   `koanf:"modestbranding"`
	Related        bool   `koanf:"rel"`
	PlaysInline    bool   `koanf:"playsinline"`
	Fullscreen     bool   `koanf:"fs"`
	Captions       bool   `koanf:"cc_load_policy"`
	Annotations    bool   `koanf:"iv_load_policy"`
	JSAPI          bool   `koanf:"enablejsapi"`
	Origin         string `koanf:"origin"`
}

// DefaultPlayerVars autoplays inline with related content and annotations
// suppressed.
func DefaultPlayerVars() PlayerVars {
	return PlayerVars{
		Autoplay:       true,
		Controls:       true,
		ModestBranding: true,
		PlaysInline:    true,
		Fullscreen:     true,
		JSAPI:          true,
	}
}

// Values renders the vars as widget query parameters.
func (v PlayerVars) Values() url.Values {
	q := url.Values{}
	q.Set("autoplay", flag(v.Autoplay))
	q.Set("controls", flag(v.Controls))
	q.Set("modestbranding", flag(v.ModestBranding))
	q.Set("rel", flag(v.Related))
	q.Set("playsinline", flag(v.PlaysInline))
	q.Set("fs", flag(v.Fullscreen))
	q.Set("cc_load_policy", flag(v.Captions))
	// 1 shows annotations, 3 hides them
	if v.Annotations {
		q.Set("iv_load_policy", "1")
	} else {
		q.Set("iv_load_policy", "3")
	}
	q.Set("enablejsapi", flag(v.JSAPI))
	if v.Origin != "" {
		q.Set("origin", v.Origin)
	}
	return q
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
