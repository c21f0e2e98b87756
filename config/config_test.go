package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/juststreamit/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("fail to unmarshal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("bad decode")
		cu.EXPECT().ConfigFileUsed().Return("")
		cu.EXPECT().Unmarshal(gomock.Any()).Return(wantErr)
		_, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Catalog: Catalog{
				BaseURL:        "http://catalog.local:8000/api/v1",
				Timeout:        time.Second * 5,
				MaxRetries:     4,
				BaseBackoff:    time.Millisecond * 250,
				MaxConcurrency: 3,
			},
			Page: Page{
				TopPageSize:      7,
				CategoryPageSize: 6,
				Categories:       []string{"Crime", "Comedy"},
			},
			Viewport: Viewport{CellWidth: 9},
			Server:   Server{Port: 9090},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
		assert.NoError(t, c.Validate())
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("catalog.baseURL", "http://localhost:8000/api/v1")
		cu.SetDefault("server.port", 8080)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Catalog: Catalog{
				BaseURL: "http://localhost:8000/api/v1",
			},
			Server: Server{
				Port: 8080,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Catalog:  Catalog{BaseURL: "http://localhost:8000/api/v1"},
		Page:     Page{TopPageSize: 7, CategoryPageSize: 6, Categories: []string{"Crime"}},
		Viewport: Viewport{CellWidth: 8},
		Server:   Server{Port: 8080},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing base url", mutate: func(c *Config) { c.Catalog.BaseURL = "" }},
		{name: "base url not a url", mutate: func(c *Config) { c.Catalog.BaseURL = "localhost" }},
		{name: "top page too small", mutate: func(c *Config) { c.Page.TopPageSize = 1 }},
		{name: "empty category", mutate: func(c *Config) { c.Page.Categories = []string{""} }},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "negative retries", mutate: func(c *Config) { c.Catalog.MaxRetries = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			c.Page.Categories = append([]string(nil), valid.Page.Categories...)
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
