package services

import (
	"context"
	"encoding/json"
	"time"

	"pueblastay/dto"

	"github.com/redis/go-redis/v9"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters mezcla la búsqueda anterior con la nueva: lo que el
// cliente no volvió a mandar se conserva.
func MergeFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	new.PropertyID = orUintPointer(new.PropertyID, old.PropertyID)
	new.Type = orString(new.Type, old.Type)
	new.Zone = orString(new.Zone, old.Zone)
	new.Name = orString(new.Name, old.Name)
	new.Semester = orString(new.Semester, old.Semester)
	new.HasPrivateKitchen = orBoolPointer(new.HasPrivateKitchen, old.HasPrivateKitchen)
	new.IsEntirePlace = orBoolPointer(new.IsEntirePlace, old.IsEntirePlace)

	// Las fechas se mezclan en par: si el cliente mandó una ventana
	// nueva incompleta no se hereda la mitad vieja, porque podría dejar
	// check_out antes de check_in.
	if new.CheckIn == nil && new.CheckOut == nil {
		new.CheckIn = old.CheckIn
		new.CheckOut = old.CheckOut
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orUintPointer(newVal, oldVal *uint) *uint {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orBoolPointer(newVal, oldVal *bool) *bool {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
