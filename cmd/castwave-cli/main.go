// Command castwave-cli is a small client for a running castwave server.
// It can check health, request a script, or narrate one:
//
//	castwave-cli -health
//	castwave-cli -source topic -content "Docker networking" > script.txt
//	castwave-cli -narrate -file script.txt -output narration.wav
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// appFlags holds the parsed command-line flag values.
type appFlags struct {
	server  string
	health  bool
	source  string
	content string
	file    string
	narrate bool
	output  string
	timeout time.Duration
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	flags := parseFlags()
	client := &http.Client{Timeout: flags.timeout}

	switch {
	case flags.health:
		return checkHealth(client, flags.server)
	case flags.narrate:
		return narrate(client, flags)
	case flags.source != "":
		return generateScript(client, flags)
	default:
		flag.Usage()
		return errors.New("nothing to do: pass -health, -source, or -narrate")
	}
}

func parseFlags() appFlags {
	var flags appFlags
	flag.StringVar(&flags.server, "server", "http://localhost:8000", "Base URL of the castwave server")
	flag.BoolVar(&flags.health, "health", false, "Check server health and exit")
	flag.StringVar(&flags.source, "source", "", "Script source type: topic, github, script, or file")
	flag.StringVar(&flags.content, "content", "", "Source content: a topic, a GitHub URL, or raw text")
	flag.StringVar(&flags.file, "file", "", "Read content from this file instead of -content")
	flag.BoolVar(&flags.narrate, "narrate", false, "Send the content to /generate-audio instead of /generate-script")
	flag.StringVar(&flags.output, "output", "", "Download the finished WAV to this path")
	flag.DurationVar(&flags.timeout, "timeout", 15*time.Minute, "HTTP timeout covering the whole synthesis run")
	flag.Parse()

	return flags
}

// sourceContent resolves the request content from -file or -content.
func sourceContent(flags appFlags) (string, error) {
	if flags.file != "" {
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", flags.file, err)
		}
		return string(data), nil
	}
	return flags.content, nil
}

func checkHealth(client *http.Client, server string) error {
	resp, err := client.Get(server + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}
	fmt.Println("Server is healthy")
	return nil
}

// generateScript requests a script and prints it to stdout, with the
// metadata on stderr so the script alone can be piped onward.
func generateScript(client *http.Client, flags appFlags) error {
	content, err := sourceContent(flags)
	if err != nil {
		return err
	}

	var result struct {
		Script      string   `json:"script"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	}
	err = postJSON(client, flags.server+"/generate-script", map[string]string{
		"source_type": flags.source,
		"content":     content,
	}, &result)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Title: %s\n", result.Title)
	if result.Description != "" {
		fmt.Fprintf(os.Stderr, "Description: %s\n", result.Description)
	}
	if len(result.Tags) > 0 {
		fmt.Fprintf(os.Stderr, "Tags: %s\n", strings.Join(result.Tags, ", "))
	}
	fmt.Println(result.Script)

	return nil
}

func narrate(client *http.Client, flags appFlags) error {
	script, err := sourceContent(flags)
	if err != nil {
		return err
	}

	var result struct {
		AudioURL string `json:"audio_url"`
	}
	err = postJSON(client, flags.server+"/generate-audio", map[string]string{
		"script": script,
	}, &result)
	if err != nil {
		return err
	}

	fmt.Printf("Audio ready: %s%s\n", flags.server, result.AudioURL)

	if flags.output == "" {
		return nil
	}
	return download(client, flags.server+result.AudioURL, flags.output)
}

func download(client *http.Client, url, path string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: status %d", url, resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Saved: %s\n", path)

	return nil
}

// postJSON sends a JSON request and decodes a JSON response, surfacing
// the server's error payload on non-200 statuses.
func postJSON(client *http.Client, url string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var serverErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Error != "" {
			return fmt.Errorf("%s: %s (status %d)", serverErr.Error, serverErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("calling %s: status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
