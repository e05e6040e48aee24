package imdb

import (
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"studiocat/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/imdb")

var ErrFetchFailed = fmt.Errorf("page fetch failed")

const DefaultBaseUrl = "https://www.imdb.com/search/title"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl when empty
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawUrl := opts.BaseUrl
	if rawUrl == "" {
		rawUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/imdb/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}
