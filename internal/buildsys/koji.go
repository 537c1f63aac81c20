package buildsys

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/kolo/xmlrpc"
)

// Koji talks to a Koji hub over XML-RPC. Mutating calls authenticate with a
// client certificate via sslLogin on first use.
type Koji struct {
	url       string
	transport http.RoundTripper

	mu      sync.Mutex
	anon    *xmlrpc.Client
	session *kojiSession
	callnum int
}

type kojiSession struct {
	ID  int    `xmlrpc:"session-id"`
	Key string `xmlrpc:"session-key"`
}

type kojiTag struct {
	ID   int    `xmlrpc:"id"`
	Name string `xmlrpc:"name"`
}

type kojiBuild struct {
	ID      int            `xmlrpc:"build_id"`
	NVR     string         `xmlrpc:"nvr"`
	Name    string         `xmlrpc:"name"`
	Version string         `xmlrpc:"version"`
	Release string         `xmlrpc:"release"`
	Extra   map[string]any `xmlrpc:"extra"`
}

func (b kojiBuild) info() BuildInfo {
	return BuildInfo{ID: b.ID, NVR: b.NVR, Name: b.Name, Version: b.Version, Release: b.Release, Extra: b.Extra}
}

// NewKoji returns a client for the hub at hubURL. certFile and keyFile may be
// empty for read-only use.
func NewKoji(hubURL, certFile, keyFile string) (*Koji, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if certFile != "" && keyFile != "" {
		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return nil, fmt.Errorf("load koji client certificate: %w", err)
		}
		transport.TLSClientConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
	}
	anon, err := xmlrpc.NewClient(hubURL, transport)
	if err != nil {
		return nil, fmt.Errorf("koji client: %w", err)
	}
	return &Koji{url: hubURL, transport: transport, anon: anon}, nil
}

// kwargs encodes Python keyword arguments the way the hub expects them.
func kwargs(kv map[string]any) map[string]any {
	out := map[string]any{"__starstar": true}
	for k, v := range kv {
		out[k] = v
	}
	return out
}

func (k *Koji) call(ctx context.Context, method string, args []any, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := k.anon.Call(method, args, reply); err != nil {
		return fmt.Errorf("koji %s: %w", method, err)
	}
	return nil
}

func (k *Koji) authedCall(ctx context.Context, method string, args []any, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.session == nil {
		var s kojiSession
		if err := k.anon.Call("sslLogin", nil, &s); err != nil {
			return fmt.Errorf("koji sslLogin: %w", err)
		}
		k.session = &s
		log.Printf("[koji] logged in to %s (session %d)", k.url, s.ID)
	}
	k.callnum++
	q := url.Values{}
	q.Set("session-id", strconv.Itoa(k.session.ID))
	q.Set("session-key", k.session.Key)
	q.Set("callnum", strconv.Itoa(k.callnum))
	client, err := xmlrpc.NewClient(k.url+"?"+q.Encode(), k.transport)
	if err != nil {
		return fmt.Errorf("koji client: %w", err)
	}
	defer client.Close()
	if err := client.Call(method, args, reply); err != nil {
		return fmt.Errorf("koji %s: %w", method, err)
	}
	return nil
}

func (k *Koji) GetBuild(ctx context.Context, nvr string) (*BuildInfo, error) {
	var raw any
	if err := k.call(ctx, "getBuild", []any{nvr}, &raw); err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildNotFound, nvr)
	}
	info := &BuildInfo{NVR: nvr}
	if v, ok := m["build_id"].(int); ok {
		info.ID = v
	}
	info.Name, _ = m["name"].(string)
	info.Version, _ = m["version"].(string)
	info.Release, _ = m["release"].(string)
	info.Extra, _ = m["extra"].(map[string]any)
	return info, nil
}

func (k *Koji) ListTags(ctx context.Context, nvr string) ([]Tag, error) {
	var tags []kojiTag
	if err := k.call(ctx, "listTags", []any{nvr}, &tags); err != nil {
		return nil, err
	}
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, Tag{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (k *Koji) TagBuild(ctx context.Context, tag, nvr string) error {
	var taskID any
	return k.authedCall(ctx, "tagBuild", []any{tag, nvr, kwargs(map[string]any{"force": true})}, &taskID)
}

func (k *Koji) UntagBuild(ctx context.Context, tag, nvr string) error {
	var ignored any
	return k.authedCall(ctx, "untagBuild", []any{tag, nvr, kwargs(map[string]any{"force": true})}, &ignored)
}

func (k *Koji) MoveBuild(ctx context.Context, from, to, nvr string) error {
	var taskID any
	return k.authedCall(ctx, "moveBuild", []any{from, to, nvr, kwargs(map[string]any{"force": true})}, &taskID)
}

func (k *Koji) GetTag(ctx context.Context, name string) (*Tag, error) {
	var raw any
	if err := k.call(ctx, "getTag", []any{name}, &raw); err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, nil
	}
	tag := &Tag{Name: name}
	if id, ok := m["id"].(int); ok {
		tag.ID = id
	}
	return tag, nil
}

func (k *Koji) CreateTag(ctx context.Context, name, parent string) error {
	var id any
	args := []any{name}
	if parent != "" {
		args = append(args, kwargs(map[string]any{"parent": parent}))
	}
	return k.authedCall(ctx, "createTag", args, &id)
}

func (k *Koji) DeleteTag(ctx context.Context, name string) error {
	var ignored any
	return k.authedCall(ctx, "deleteTag", []any{name}, &ignored)
}

func (k *Koji) RemoveSideTag(ctx context.Context, name string) error {
	var ignored any
	return k.authedCall(ctx, "removeSideTag", []any{name}, &ignored)
}

func (k *Koji) GetLatestBuilds(ctx context.Context, tag, pkg string) ([]BuildInfo, error) {
	var builds []kojiBuild
	if err := k.call(ctx, "getLatestBuilds", []any{tag, kwargs(map[string]any{"package": pkg})}, &builds); err != nil {
		return nil, err
	}
	out := make([]BuildInfo, 0, len(builds))
	for _, b := range builds {
		out = append(out, b.info())
	}
	return out, nil
}
