package config

import (
	"os"
	"reflect"
)

// loadFromEnv overrides configuration fields carrying an env tag with the
// matching environment variable, when set.
func loadFromEnv(config *Config) error {
	return overrideStruct(reflect.ValueOf(config).Elem())
}

func overrideStruct(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)

		if field.Kind() == reflect.Struct {
			if err := overrideStruct(field); err != nil {
				return err
			}
			continue
		}

		envName := t.Field(i).Tag.Get("env")
		if envName == "" || field.Kind() != reflect.String {
			continue
		}
		if value, exists := os.LookupEnv(envName); exists {
			field.SetString(value)
		}
	}
	return nil
}
