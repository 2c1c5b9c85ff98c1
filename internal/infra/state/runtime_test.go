package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeConfig_Default(t *testing.T) {
	assert.Equal(t, DefaultAPIBaseURL, NewRuntimeConfig("").BaseURL())
	assert.Equal(t, "http://10.0.0.5:9000", NewRuntimeConfig("http://10.0.0.5:9000").BaseURL())
}

func TestRuntimeConfig_LastWriteWins(t *testing.T) {
	c := NewRuntimeConfig(DefaultAPIBaseURL)
	c.SetBaseURL("http://a")
	c.SetBaseURL("not a url")
	assert.Equal(t, "not a url", c.BaseURL())

	c.SetBaseURL("")
	assert.Equal(t, DefaultAPIBaseURL, c.BaseURL())
}

func TestRuntimeConfig_Concurrent(t *testing.T) {
	c := NewRuntimeConfig("")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.SetBaseURL(fmt.Sprintf("http://host-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			assert.NotEmpty(t, c.BaseURL())
		}()
	}
	wg.Wait()
	assert.Contains(t, c.BaseURL(), "http://host-")
}
