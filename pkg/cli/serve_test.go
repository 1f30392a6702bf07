package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobknauer/gotrie/pkg/dictionary"
)

func TestServer(t *testing.T) {
	dict := dictionary.New(dictionary.LowercaseLatin)
	dict.Add("apple", "A red or green fruit")
	dict.Add("appletree", "A tree on which apples grow")
	dict.Add("banana", "A yellow fruit")

	server := NewServer(testContext(t), ":0", dict)
	testServer := httptest.NewServer(server.Handler())
	defer testServer.Close()

	client := testServer.Client()

	t.Run("Get word", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/words/apple", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var entry dictionary.Entry
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
		assert.Equal(t, dictionary.Entry{Word: "apple", Definition: "A red or green fruit"}, entry)
	})

	t.Run("Get missing word", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/words/app", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "a key prefix is not itself a word")
	})

	t.Run("Complete prefix", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/complete/app", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Prefix  string             `json:"prefix"`
			Count   int                `json:"count"`
			Entries []dictionary.Entry `json:"entries"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "app", result.Prefix)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, []dictionary.Entry{
			{Word: "apple", Definition: "A red or green fruit"},
			{Word: "appletree", Definition: "A tree on which apples grow"},
		}, result.Entries)
	})

	t.Run("Complete with limit", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/complete/app?limit=1", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Complete absent prefix", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/complete/xyz", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 0, result.Count, "an absent prefix yields an empty list, not an error")
	})

	t.Run("List words", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/words", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		var entries []dictionary.Entry
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
		assert.Len(t, entries, 3)
		assert.Equal(t, "apple", entries[0].Word, "listing follows alphabet order")
	})

	t.Run("Stats", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/stats", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		var stats dictionary.Stats
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
		assert.Equal(t, 3, stats.Words)
		assert.Equal(t, 9, stats.MaxDepth, "appletree is the deepest chain")
	})
}
