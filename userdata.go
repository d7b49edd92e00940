package main

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/quasilyte/gdata/v2"
	"log"
)

// UserData is what survives between sessions for a user.
type UserData struct {
	Celebrations int64 `yaml:"Celebrations"`
}

// Every user gets a property of the same object, named after the user.
const userDataObject = "userdata"

// UserDataStore keeps UserData on the local machine: a file in the user's
// data folder on desktop, localStorage in the browser. A nil store is valid
// and stores nothing.
type UserDataStore struct {
	m *gdata.Manager
}

func OpenUserDataStore(appName string) (*UserDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open user data store: %w", err)
	}
	return &UserDataStore{m: m}, nil
}

func (s *UserDataStore) Load(username string) (u UserData, err error) {
	if s == nil || !s.m.ObjectPropExists(userDataObject, username) {
		return
	}
	data, err := s.m.LoadObjectProp(userDataObject, username)
	if err != nil {
		return u, fmt.Errorf("failed to load user data: %w", err)
	}
	if err = yaml.Unmarshal(data, &u); err != nil {
		return u, fmt.Errorf("failed to parse user data: %w", err)
	}
	return
}

func (s *UserDataStore) Save(username string, u UserData) error {
	if s == nil {
		return nil
	}
	data, err := yaml.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize user data: %w", err)
	}
	if err = s.m.SaveObjectProp(userDataObject, username, data); err != nil {
		return fmt.Errorf("failed to save user data: %w", err)
	}
	return nil
}

// LoadUserData combines what the local store and the server know about the
// user. The user may have celebrated on another machine, so the larger count
// wins.
func LoadUserData(store *UserDataStore, username string) UserData {
	local, err := store.Load(username)
	if err != nil {
		log.Printf("[UserData] Warning: %v", err)
	}

	remoteStr := GetUserDataHttp(username)
	if remoteStr == "" {
		return local
	}
	var remote UserData
	if err = yaml.Unmarshal([]byte(remoteStr), &remote); err != nil {
		log.Printf("[UserData] Warning: failed to parse server data: %v", err)
		return local
	}
	return UserData{Celebrations: max(local.Celebrations, remote.Celebrations)}
}

// UploadUserData saves every UserData received on ch, locally and on the
// server. It returns when ch is closed.
func UploadUserData(username string, store *UserDataStore, ch chan UserData) {
	for u := range ch {
		if err := store.Save(username, u); err != nil {
			log.Printf("[UserData] Warning: %v", err)
		}
		data, err := yaml.Marshal(u)
		Check(err)
		SetUserDataHttp(username, string(data))
	}
}

// UploadPlaythroughs sends every playthrough received on ch to the server.
// It returns when ch is closed.
func UploadPlaythroughs(username string, ch chan *Playthrough) {
	for p := range ch {
		UploadDataToDbHttp(username, p)
	}
}
