package server

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"wallpaper-studio/internal/log"
)

// OpenAIPicker generates real wallpapers when an API key is configured.
type OpenAIPicker struct {
	client *openai.Client
	model  string
}

var _ Picker = (*OpenAIPicker)(nil)

func NewOpenAIPicker(apiKey string, model string) *OpenAIPicker {
	return &OpenAIPicker{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIPicker) PickURL(ctx context.Context, prompt string) (string, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("openai").With("model", p.model)
	log.Info("generating wallpaper image")

	req := openai.ImageRequest{
		Prompt: prompt,
		// Portrait, the closest the API offers to a 9:16 phone screen.
		Size:           openai.CreateImageSize1024x1792,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
		Model:          p.model,
	}

	resp, err := p.client.CreateImage(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("no image data returned")
	}
	return resp.Data[0].URL, nil
}
