package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// URLExtractor fetches a web page and turns it into plain text. Paragraph
// text is collected from the markup, then each referenced image is
// downloaded and OCRed when an OCR engine is configured.
type URLExtractor struct {
	Client *http.Client
	OCR    OCR
}

// NewURLExtractor returns a URLExtractor with a sensible request timeout.
func NewURLExtractor(ocr OCR) *URLExtractor {
	return &URLExtractor{
		Client: &http.Client{Timeout: 30 * time.Second},
		OCR:    ocr,
	}
}

// URLToText fetches the page and extracts paragraph text followed by OCR
// text from each image. Images that fail to download or OCR are skipped.
func (u *URLExtractor) URLToText(ctx context.Context, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	doc, err := u.fetchHTML(ctx, pageURL)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(paragraphText(doc))

	if u.OCR != nil {
		for _, src := range imageSources(doc) {
			imgURL := resolveImageURL(base, src)
			if imgURL == "" {
				continue
			}
			text, err := u.ocrRemoteImage(ctx, imgURL)
			if err != nil {
				continue
			}
			if text != "" {
				out.WriteString("\n")
				out.WriteString(text)
			}
		}
	}

	return CleanText(out.String()), nil
}

func (u *URLExtractor) fetchHTML(ctx context.Context, pageURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := u.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// ocrRemoteImage downloads the image to a temp file, OCRs it, and removes
// the file on every exit path.
func (u *URLExtractor) ocrRemoteImage(ctx context.Context, imgURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := u.client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	ext := path.Ext(imgURL)
	if i := strings.IndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	tmp, err := os.CreateTemp("", "mcqgen-webimg-*"+ext)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return u.OCR.ImageToText(ctx, tmp.Name())
}

func (u *URLExtractor) client() *http.Client {
	if u.Client != nil {
		return u.Client
	}
	return http.DefaultClient
}

// paragraphText collects the text content of every <p> element in
// document order.
func paragraphText(doc *html.Node) string {
	var out strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			out.WriteString(nodeText(n))
			out.WriteString("\n")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out.String()
}

func nodeText(n *html.Node) string {
	var out strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			out.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out.String()
}

// imageSources collects the src attribute of every <img> element in
// document order.
func imageSources(doc *html.Node) []string {
	var srcs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "src" && attr.Val != "" {
					srcs = append(srcs, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return srcs
}

// resolveImageURL turns a possibly relative img src into an absolute URL
// against the page it came from. Unresolvable and non-HTTP sources
// return "".
func resolveImageURL(base *url.URL, src string) string {
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	return abs.String()
}
