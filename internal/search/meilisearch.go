package search

import (
	"encoding/json"
	"strconv"

	"github.com/meilisearch/meilisearch-go"

	"property-listings-api/internal/models"
)

// Client wraps the Meilisearch index holding active listings. It is optional:
// when search is disabled the service falls back to SQL substring matching.
type Client struct {
	client *meilisearch.Client
	index  string
}

// NewClient creates a search client for the listings index.
func NewClient(host, apiKey string) *Client {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &Client{
		client: client,
		index:  "listings",
	}
}

// InitIndex initializes the Meilisearch index
func (c *Client) InitIndex() error {
	_, err := c.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        c.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = c.client.Index(c.index).UpdateSearchableAttributes(&[]string{
		"title",
		"description",
		"city",
		"street",
	})
	if err != nil {
		return err
	}

	_, err = c.client.Index(c.index).UpdateFilterableAttributes(&[]string{
		"id",
		"is_active",
		"transaction_type",
		"city",
		"price",
	})
	if err != nil {
		return err
	}

	_, err = c.client.Index(c.index).UpdateSortableAttributes(&[]string{
		"price",
		"created_at",
	})
	return err
}

// IndexProperty indexes a single listing
func (c *Client) IndexProperty(property *models.Property) error {
	_, err := c.client.Index(c.index).AddDocuments([]models.Property{*property})
	return err
}

// IndexProperties indexes multiple listings
func (c *Client) IndexProperties(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	_, err := c.client.Index(c.index).AddDocuments(properties)
	return err
}

// RemoveProperty removes a listing from the index
func (c *Client) RemoveProperty(id uint) error {
	_, err := c.client.Index(c.index).DeleteDocument(strconv.FormatUint(uint64(id), 10))
	return err
}

// Search runs a full-text query over active listings and returns up to limit hits.
func (c *Client) Search(query string, limit int64) ([]models.Property, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	searchRes, err := c.client.Index(c.index).Search(query, &meilisearch.SearchRequest{
		Limit:  limit,
		Filter: "is_active = true",
	})
	if err != nil {
		return nil, err
	}

	// Convert hits back into listing structs
	var properties []models.Property
	for _, hit := range searchRes.Hits {
		hitJSON, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var property models.Property
		if err := json.Unmarshal(hitJSON, &property); err != nil {
			continue
		}

		properties = append(properties, property)
	}

	return properties, nil
}
