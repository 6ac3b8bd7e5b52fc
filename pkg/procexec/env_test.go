package procexec

import (
	"reflect"
	"testing"
)

func TestEnvWith(t *testing.T) {
	tests := []struct {
		name  string
		env   []string
		key   string
		value string
		want  []string
	}{
		{
			name:  "appends when absent",
			env:   []string{"HOME=/home/op", "PATH=/usr/bin"},
			key:   "PYTHONPATH",
			value: "/opt/venv/lib/site-packages",
			want:  []string{"HOME=/home/op", "PATH=/usr/bin", "PYTHONPATH=/opt/venv/lib/site-packages"},
		},
		{
			name:  "replaces existing entry in place",
			env:   []string{"PYTHONPATH=/stale", "HOME=/home/op"},
			key:   "PYTHONPATH",
			value: "/opt/venv/lib/site-packages",
			want:  []string{"PYTHONPATH=/opt/venv/lib/site-packages", "HOME=/home/op"},
		},
		{
			name:  "collapses duplicate entries",
			env:   []string{"PYTHONPATH=/a", "HOME=/home/op", "PYTHONPATH=/b"},
			key:   "PYTHONPATH",
			value: "/c",
			want:  []string{"PYTHONPATH=/c", "HOME=/home/op"},
		},
		{
			name:  "does not touch prefix-sharing keys",
			env:   []string{"PYTHONPATHS=/other"},
			key:   "PYTHONPATH",
			value: "/opt",
			want:  []string{"PYTHONPATHS=/other", "PYTHONPATH=/opt"},
		},
		{
			name:  "empty environment",
			env:   nil,
			key:   "PYTHONPATH",
			value: "/opt",
			want:  []string{"PYTHONPATH=/opt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvWith(tt.env, tt.key, tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EnvWith() = %v, want %v", got, tt.want)
			}
		})
	}
}
