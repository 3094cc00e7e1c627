package htmlast

import "testing"

func TestSerializeEscaping(t *testing.T) {
	tests := []struct {
		name string
		mode TextMode
		in   string
		want string
	}{
		{"normal escapes amp lt gt", ModeNormal, `a & b < c > d`, "a &amp; b &lt; c &gt; d"},
		{"code escapes lt gt only", ModeCode, `a & b < c > d`, "a & b &lt; c &gt; d"},
		{"raw passes through", ModeRaw, `<b>&</b>`, "<b>&</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Serialize(&Text{Content: tt.in, Mode: tt.mode})
			if got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeVoidElement(t *testing.T) {
	br := NewElement("br")
	br.Append("ignored")

	got := Serialize(br)
	want := "<br/>"
	if got != want {
		t.Errorf("Serialize(br) = %q, want %q", got, want)
	}
}

func TestSerializeElementWithAttributesAndChildren(t *testing.T) {
	a := NewElement("a")
	a.SetAttr("href", `https://example.com/"quote"`)
	a.Append("click")

	got := Serialize(a)
	want := `<a href="https://example.com/&quot;quote&quot;">click</a>`
	if got != want {
		t.Errorf("Serialize(a) = %q, want %q", got, want)
	}
}

func TestAddClassMergesWithoutDuplicates(t *testing.T) {
	div := NewElement("div")
	div.AddClass("a", "b")
	div.AddClass("b", "c")

	got := div.GetAttr("class")
	want := "a b c"
	if got != want {
		t.Errorf("class = %q, want %q", got, want)
	}
}

func TestSetStyleOverwritesSameProperty(t *testing.T) {
	td := NewElement("td")
	td.SetStyle("text-align", "left")
	td.SetStyle("text-align", "right")
	td.SetStyle("color", "red")

	got := Serialize(td)
	want := `<td style="text-align:right;color:red"></td>`
	if got != want {
		t.Errorf("Serialize(td) = %q, want %q", got, want)
	}
}

func TestSerializeBoolAttr(t *testing.T) {
	input := NewElement("input")
	input.SetAttr("type", "checkbox")
	input.SetBoolAttr("checked", true)
	input.SetBoolAttr("disabled", true)

	got := Serialize(input)
	want := `<input type="checkbox" checked disabled/>`
	if got != want {
		t.Errorf("Serialize(input) = %q, want %q", got, want)
	}
}

func TestSerializeBoolAttrFalseIsOmitted(t *testing.T) {
	input := NewElement("input")
	input.SetAttr("type", "checkbox")
	input.SetBoolAttr("checked", false)
	input.SetBoolAttr("disabled", false)

	got := Serialize(input)
	want := `<input type="checkbox"/>`
	if got != want {
		t.Errorf("Serialize(input) = %q, want %q", got, want)
	}
}

func TestPurgeEmptyChildren(t *testing.T) {
	p := NewElement("p")
	p.Append("")
	inner := NewElement("span")
	p.Append(inner)
	br := NewElement("br")
	p.Append(br)
	p.Append("hello")

	p.PurgeEmptyChildren()

	got := Serialize(p)
	want := "<p><br/>hello</p>"
	if got != want {
		t.Errorf("Serialize(p) after purge = %q, want %q", got, want)
	}
}
