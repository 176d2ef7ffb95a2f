package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	speakFlag := flag.String("speak", "", "text to synthesize")
	listenFlag := flag.String("listen", "", "audio file to evaluate for a coupon")
	modeFlag := flag.String("mode", "raw", "transcription mode (raw or polished)")
	outputFlag := flag.String("output", "", "output file")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	switch {
	case *listenFlag != "":
		if err := listen(ctx, c, *listenFlag, *modeFlag, *outputFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case *speakFlag != "":
		if err := speak(ctx, c, *speakFlag, *outputFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	default:
		interactive(ctx, c)
	}
}

func speak(ctx context.Context, c *client.Client, text, name string) error {
	speech, err := c.Speech.New(ctx, client.SpeechRequest{
		Question: text,
	})

	if err != nil {
		return err
	}

	return save(name, speech.ContentType, ".mp3", speech.Content)
}

func listen(ctx context.Context, c *client.Client, path, mode, name string) error {
	f, err := os.Open(path)

	if err != nil {
		return err
	}

	defer f.Close()

	payload, err := c.Coupons.New(ctx, client.CouponRequest{
		Name:   filepath.Base(path),
		Reader: f,

		Mode: mode,
	})

	if err != nil {
		return err
	}

	if payload.IsText() {
		fmt.Println(string(payload.Content))
		return nil
	}

	return save(name, payload.ContentType, ".png", payload.Content)
}

func interactive(ctx context.Context, c *client.Client) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			return
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue
		}

		if err := speak(ctx, c, input, ""); err != nil {
			output.WriteString(err.Error() + "\n")
		}

		output.WriteString("\n")
	}
}

func save(name, contentType, fallback string, data []byte) error {
	if name == "" {
		name = uuid.New().String()

		if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
			contentType = mediatype
		}

		if ext, _ := mime.ExtensionsByType(contentType); len(ext) > 0 {
			name += ext[0]
		} else {
			name += fallback
		}
	}

	if err := os.WriteFile(name, data, 0600); err != nil {
		return err
	}

	fmt.Println("Saved: " + name)

	return nil
}
