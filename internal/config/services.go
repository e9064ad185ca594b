package config

type Paste struct {
	APIKey  string `env:"PASTE_API_KEY,required" json:"-"`
	BaseURL string `env:"PASTE_BASE_URL" envDefault:"https://pastebin.com"`
}

type Shortener struct {
	APIToken string `env:"SHORTENER_API_TOKEN,required" json:"-"`
	BaseURL  string `env:"SHORTENER_BASE_URL" envDefault:"https://yeumoney.com"`
}
