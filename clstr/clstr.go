// Package clstr parses the .clstr cluster listing written by CD-HIT:
//
//	>Cluster 0
//	0	2799aa, >NP_109689.1|MPN001... *
//	1	2214aa, >NP_109863.1|MPN175... at 78.21%
package clstr

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var ErrMalformed = errors.New("malformed cluster file")

type Member struct {
	ID     string
	Length int
	// Representative marks the sequence CD-HIT kept for the cluster.
	Representative bool
	// Identity to the representative in percent, 100 for the representative.
	Identity float64
}

type Cluster struct {
	Name    string
	Members []Member
}

func (c Cluster) Representative() (Member, bool) {
	for _, m := range c.Members {
		if m.Representative {
			return m, true
		}
	}
	return Member{}, false
}

// IDs maps member ids through extract, dropping those it cannot handle.
func (c Cluster) IDs(extract func(string) (string, bool)) []string {
	out := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		if id, ok := extract(m.ID); ok {
			out = append(out, id)
		}
	}
	return out
}

// Parse reads clusters in file order. Cluster names have spaces replaced by
// underscores, so ">Cluster 0" becomes "Cluster_0".
func Parse(r io.Reader) ([]Cluster, error) {
	var clusters []Cluster
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == '>' {
			name := strings.ReplaceAll(strings.TrimSpace(line[1:]), " ", "_")
			clusters = append(clusters, Cluster{Name: name})
			continue
		}
		if len(clusters) == 0 {
			return nil, errors.WithMessagef(ErrMalformed, "line %d: member before any cluster header", lineNo)
		}
		m, err := parseMember(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNo)
		}
		last := &clusters[len(clusters)-1]
		last.Members = append(last.Members, m)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read clusters")
	}
	return clusters, nil
}

// parseMember reads "<n>\t<len>aa, ><id>... <* | at [+/-/]<pct>%>".
func parseMember(line string) (Member, error) {
	gt := strings.IndexByte(line, '>')
	dots := strings.Index(line, "...")
	if gt < 0 || dots < gt {
		return Member{}, errors.WithMessagef(ErrMalformed, "%q", line)
	}
	m := Member{ID: line[gt+1 : dots]}

	head := strings.Fields(line[:gt])
	if len(head) < 2 {
		return Member{}, errors.WithMessagef(ErrMalformed, "no length in %q", line)
	}
	length := strings.TrimRight(head[1], "ant,")
	n, err := cast.ToIntE(length)
	if err != nil {
		return Member{}, errors.WithMessagef(ErrMalformed, "length %q", head[1])
	}
	m.Length = n

	tail := strings.TrimSpace(line[dots+3:])
	switch {
	case tail == "*":
		m.Representative = true
		m.Identity = 100
	case strings.HasPrefix(tail, "at "):
		pct := strings.TrimSuffix(strings.TrimSpace(tail[3:]), "%")
		if i := strings.LastIndexByte(pct, '/'); i >= 0 {
			pct = pct[i+1:]
		}
		id, err := cast.ToFloat64E(pct)
		if err != nil {
			return Member{}, errors.WithMessagef(ErrMalformed, "identity %q", tail)
		}
		m.Identity = id
	default:
		return Member{}, errors.WithMessagef(ErrMalformed, "unexpected suffix %q", tail)
	}
	return m, nil
}

func ParseFile(path string) ([]Cluster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()
	clusters, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return clusters, nil
}
