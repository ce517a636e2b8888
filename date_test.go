package globals

import (
	"testing"
	"time"
)

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name    string
		pdfdate string
		want    time.Time
		wantErr bool
	}{
		{name: "fq_tz",
			pdfdate: "D:20240419110302+02'00'",
			want:    time.Date(2024, 4, 19, 11, 3, 2, 0, time.FixedZone("", 2*60*60)),
		},
		{name: "z_tz",
			pdfdate: "D:20240419110302Z",
			want:    time.Date(2024, 4, 19, 11, 3, 2, 0, time.UTC),
		},
		{name: "no_tz",
			pdfdate: "D:20240419110302",
			want:    time.Date(2024, 4, 19, 11, 3, 2, 0, time.UTC),
		},
		{name: "no_marker",
			pdfdate: "20240419110302Z",
			want:    time.Date(2024, 4, 19, 11, 3, 2, 0, time.UTC),
		},
		{name: "date_only",
			pdfdate: "D:19981223",
			want:    time.Date(1998, 12, 23, 0, 0, 0, 0, time.UTC),
		},
		{name: "year_only",
			pdfdate: "D:2006",
			want:    time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage",
			pdfdate: "next tuesday",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertDate(tt.pdfdate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConvertDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			// normalize: parsed offsets carry no zone name
			if !got.UTC().Equal(tt.want.UTC()) {
				t.Errorf("ConvertDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	times := []time.Time{
		time.Date(1998, 12, 23, 19, 52, 0, 0, PST),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)),
	}
	for _, in := range times {
		s := FormatDate(in)
		got, err := ConvertDate(s)
		if err != nil {
			t.Fatalf("ConvertDate(%q): %v", s, err)
		}
		if !got.Equal(in) {
			t.Errorf("round trip of %v via %q = %v", in, s, got)
		}
	}
}
