// Package console implements the interactive terminal surface: a numbered
// menu, URL and worker-count prompts, and one-line result reporting.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
	"github.com/pvictorr/SpotifyDownloader-API/internal/ports"
)

// Console drives the download service from an interactive prompt loop.
type Console struct {
	service     ports.DownloadService
	defaultPath string
	in          *bufio.Scanner
	out         io.Writer
}

// New creates a console bound to the given input/output streams.
func New(service ports.DownloadService, defaultPath string, in io.Reader, out io.Writer) *Console {
	return &Console{
		service:     service,
		defaultPath: defaultPath,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run shows the menu until the user picks exit or input ends. Invalid menu
// choices and URLs re-prompt; they are never fatal.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Spotify to MP3 Downloader")

	for {
		contentType, ok := c.promptContentType()
		if !ok {
			return nil
		}
		if contentType == domain.ContentTypeExit {
			fmt.Fprintln(c.out, "Exiting the program.")
			return nil
		}

		url, ok := c.promptURL(contentType)
		if !ok {
			return nil
		}

		threads := domain.DefaultThreads
		if contentType.IsMulti() {
			threads, ok = c.promptThreads()
			if !ok {
				return nil
			}
			fmt.Fprintf(c.out, "\nDownloading %s as MP3 using %d parallel threads...\n", contentType, threads)
		} else {
			fmt.Fprintf(c.out, "\nDownloading %s as MP3...\n", contentType)
		}

		result := c.service.Download(ctx, domain.DownloadRequest{
			URL:             url,
			ContentType:     contentType,
			Threads:         threads,
			DestinationPath: c.defaultPath,
		}, false)

		if result.Success {
			fmt.Fprintf(c.out, "\n✓ %s\n\n", result.Message)
		} else {
			fmt.Fprintf(c.out, "\n✗ %s\n\n", result.Error)
		}
	}
}

func (c *Console) promptContentType() (domain.ContentType, bool) {
	line, ok := c.prompt("What do you want to download? (1 track, 2 playlist, 3 album, 4 exit): ")
	for ok {
		contentType, err := domain.ParseContentType(line)
		if err == nil {
			return contentType, true
		}
		line, ok = c.prompt("Invalid choice. Please enter 1, 2, 3, or 4: ")
	}
	return "", false
}

func (c *Console) promptURL(contentType domain.ContentType) (string, bool) {
	line, ok := c.prompt(fmt.Sprintf("Enter the Spotify %s URL: ", contentType))
	for ok {
		if strings.HasPrefix(line, domain.ProviderURLPrefix) {
			return line, true
		}
		line, ok = c.prompt("Invalid URL. Please enter a valid Spotify URL: ")
	}
	return "", false
}

// promptThreads reads a worker count. Empty or non-numeric input falls back
// to the default; out-of-range values are silently clamped.
func (c *Console) promptThreads() (int, bool) {
	line, ok := c.prompt(fmt.Sprintf("Enter number of parallel downloads (default: %d, max: %d): ",
		domain.DefaultThreads, domain.MaxThreads))
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return domain.DefaultThreads, true
	}
	return domain.ClampThreads(n), true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
