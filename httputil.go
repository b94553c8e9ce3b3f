package kopilka

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

// dayCache caches HTTP responses on disk. The cache key includes today's
// date, so every entry expires at midnight: rate archives never change, but
// the current day's feed is republished during the day.
type dayCache struct {
	next http.RoundTripper
}

func (c *dayCache) path(req *http.Request) string {
	key := sha1.Sum([]byte(Today().String() + " " + req.Method + " " + req.URL.String()))
	return filepath.Join(os.TempDir(), fmt.Sprintf("kopilka-%x", key))
}

func (c *dayCache) RoundTrip(req *http.Request) (*http.Response, error) {
	file := c.path(req)
	if raw, err := os.ReadFile(file); err == nil {
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), req)
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	raw, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return resp, nil
	}
	if err := os.WriteFile(file, raw, 0o600); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// DailyClient returns a client whose response cache expires every day.
func DailyClient() *http.Client {
	return &http.Client{Transport: &dayCache{http.DefaultTransport}}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, data)
}
