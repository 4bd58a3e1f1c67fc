package help

const ColdstartYAML = `# word-parser Quick Start

pipeline:
  - "split each non-blank line on whitespace"
  - "drop stop words (rules file, or the built-in English list)"
  - "strip everything but ASCII letters"
  - "reduce each word to its root (Porter by default)"
  - "count roots and rank: count desc, then word asc"

commands:
  basic: |
    word-parser -i book.txt -r stopwords.txt

  top_10: |
    word-parser -i book.txt -r stopwords.txt -n 10

  several_files: |
    word-parser -i chapter1.txt -i chapter2.txt -r stopwords.txt

  html_input: |
    word-parser --html -i page.html --blocks "type:p|li,words:>=5"

  generic_sort: |
    word-parser -i book.txt -r stopwords.txt --use-generic-sort

  report_file: |
    word-parser -i book.txt -f yaml -o results/top.yaml

  config_file: |
    word-parser --config analysis.yaml -n 50

  stem_words: |
    word-parser stem jumping jumped jumps

config_file_keys:
  input_files: "list of paths"
  rules_file: "path, one stop word per line"
  number_of_results: "default 20"
  strategy: "bounded (default) or sort"
  stemmer: "porter (default) or snowball"
  format: "table (default), json or yaml"
  output: "write report to this path"
  html: "true to parse inputs as HTML"
  block_filter: "e.g. type:p|li,words:>=5,title:false"
  detect_language: "true to warn on non-English input"
`
