package synth

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestGeminiSynthesizerReturnsDataURL(t *testing.T) {
	synthesizer, err := NewGeminiSynthesizer(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"here you go"},{"inlineData":{"mimeType":"image/png","data":"aGVsbG8="}}]}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiSynthesizer returned error: %v", err)
	}

	url, err := synthesizer.Synthesize(context.Background(), "a farmhouse kitchen")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if url != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("url = %q", url)
	}
}

func TestGeminiSynthesizerNoImageIsError(t *testing.T) {
	synthesizer, err := NewGeminiSynthesizer(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"all text, no pixels"}]}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiSynthesizer returned error: %v", err)
	}
	if _, err := synthesizer.Synthesize(context.Background(), "x"); err == nil {
		t.Fatal("Synthesize returned nil error for image-less response")
	}
}

func TestStubIsDeterministicPerPrompt(t *testing.T) {
	stub := &Stub{}
	first, err := stub.Synthesize(context.Background(), "prompt-a")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	second, err := stub.Synthesize(context.Background(), "prompt-a")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if first != second {
		t.Fatalf("stub not deterministic: %q vs %q", first, second)
	}
	other, _ := stub.Synthesize(context.Background(), "prompt-b")
	if other == first {
		t.Fatal("different prompts yielded the same URL")
	}
}

func TestStubHonorsContextCancellation(t *testing.T) {
	stub := &Stub{Delay: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := stub.Synthesize(ctx, "prompt"); err == nil {
		t.Fatal("Synthesize ignored cancelled context")
	}
}
