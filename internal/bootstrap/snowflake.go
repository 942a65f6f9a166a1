package bootstrap

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"os"

	"github.com/jt828/dropwizard-fixture/pkg/snowflake"
	snowflakeImpl "github.com/jt828/dropwizard-fixture/pkg/snowflake/implementation"
)

func InitializeSnowflake() (snowflake.Generator, error) {
	nodeID, err := PodNodeID()
	if err != nil {
		return nil, err
	}
	return snowflakeImpl.NewSnowflake(nodeID)
}

// PodNodeID hashes HOSTNAME, or the OS hostname when unset, into the
// snowflake node range 0-1023.
func PodNodeID() (int64, error) {
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		h, err := os.Hostname()
		if err != nil {
			return 0, fmt.Errorf("resolve hostname: %w", err)
		}
		hostname = h
	}
	if hostname == "" {
		return 0, fmt.Errorf("hostname is empty")
	}

	h := fnv.New64a()
	h.Write([]byte(hostname))
	nodeID := int64(binary.BigEndian.Uint64(h.Sum(nil)) % 1024)

	return nodeID, nil
}
