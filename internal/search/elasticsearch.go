// Package search indexes scan history into Elasticsearch and serves
// full-text queries over it. Indexing is best-effort: the pipeline and the
// background worker both tolerate an unreachable cluster.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"example.com/scanbridge/config"
	"example.com/scanbridge/internal/models"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client provides integration with Elasticsearch.
type Client struct {
	client *elasticsearch.Client
	config config.ElasticsearchConfig
	log    *logrus.Logger
}

// NewClient creates a new Elasticsearch client.
func NewClient(cfg config.ElasticsearchConfig, log *logrus.Logger) (*Client, error) {
	esConfig := elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	}

	client, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Elasticsearch client")
	}

	return &Client{client: client, config: cfg, log: log}, nil
}

// IndexHistoryItem indexes one history entry. The document ID is
// code-timestamp, so re-indexing the same entry overwrites in place.
func (c *Client) IndexHistoryItem(item models.ScanHistoryItem) error {
	doc := map[string]interface{}{
		"code":      item.Code,
		"timestamp": item.Timestamp,
		"sent":      item.Sent,
	}
	if item.PresetID != nil {
		doc["preset_id"] = *item.PresetID
	}
	if item.PresetName != nil {
		doc["preset_name"] = *item.PresetName
	}
	if item.WebhookURL != nil {
		doc["webhook_url"] = *item.WebhookURL
	}
	if item.WebhookName != nil {
		doc["webhook_name"] = *item.WebhookName
	}
	if item.Payload != nil {
		doc["payload"] = *item.Payload
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal history document")
	}

	req := esapi.IndexRequest{
		Index:      c.config.Index,
		DocumentID: fmt.Sprintf("%s-%d", item.Code, item.Timestamp),
		Body:       bytes.NewReader(docJSON),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), c.client)
	if err != nil {
		return errors.Wrap(err, "failed to execute Elasticsearch index request")
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
			return errors.Wrap(err, "failed to parse Elasticsearch error response")
		}
		return errors.Errorf("Elasticsearch index error: %v", e)
	}

	c.log.WithFields(logrus.Fields{
		"code":      item.Code,
		"timestamp": item.Timestamp,
	}).Debug("Indexed history item")
	return nil
}

// SearchHistory runs a match query over code, preset name, webhook name and
// payload, returning the raw source documents.
func (c *Client) SearchHistory(ctx context.Context, query string) ([]map[string]interface{}, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"code", "preset_name", "webhook_name", "payload"},
			},
		},
		"sort": []map[string]interface{}{
			{"timestamp": map[string]interface{}{"order": "desc"}},
		},
	}

	queryJSON, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal search query")
	}

	req := esapi.SearchRequest{
		Index: []string{c.config.Index},
		Body:  bytes.NewReader(queryJSON),
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Elasticsearch search request")
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, errors.Wrap(err, "failed to parse Elasticsearch error response")
		}
		return nil, errors.Errorf("Elasticsearch search error: %v", e)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to parse Elasticsearch search response")
	}

	hits, ok := result["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected search result format")
	}

	hitsArray, ok := hits["hits"].([]interface{})
	if !ok {
		return nil, errors.New("unexpected hits format")
	}

	var docs []map[string]interface{}
	for _, hit := range hitsArray {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hitMap["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		docs = append(docs, source)
	}

	return docs, nil
}
