package client

import "time"

type Clients struct {
	*WordReferenceAPI
}

func InitClients(baseURL string, timeout time.Duration) Clients {
	return Clients{
		WordReferenceAPI: NewWordReferenceAPI(baseURL, timeout),
	}
}
