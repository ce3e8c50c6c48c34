// Copyright 2025 localrec Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/localrec/localrec/logics"
)

// session is the interactive console loop. A failed request is reported
// and the loop keeps running, only end of input or an explicit exit
// terminates the session.
type session struct {
	engine *logics.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func newSession(engine *logics.Engine, in io.Reader, out io.Writer) *session {
	return &session{
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (s *session) Run(ctx context.Context) {
	fmt.Fprintln(s.out, "Welcome to the local business recommender!")
	for {
		userId, ok := s.promptUserId()
		if !ok {
			return
		}
		n, ok := s.promptCount()
		if !ok {
			return
		}
		strategy, ok := s.promptStrategy()
		if !ok {
			return
		}
		fmt.Fprintf(s.out, "Compiling %d recommendations for user %s...\n", n, userId)
		result, err := s.engine.Recommend(ctx, strategy, userId, n)
		if err != nil {
			fmt.Fprintf(s.out, "Request failed: %v\n", err)
		} else {
			s.render(result)
		}
		again, ok := s.prompt("Would you like more recommendations? [y/N] ")
		if !ok || !strings.EqualFold(again, "y") {
			fmt.Fprintln(s.out, "Goodbye!")
			return
		}
	}
}

func (s *session) promptUserId() (string, bool) {
	for {
		userId, ok := s.prompt("What is the user id? ")
		if !ok {
			return "", false
		}
		if userId != "" {
			return userId, true
		}
		fmt.Fprintln(s.out, "The user id must not be empty.")
	}
}

func (s *session) promptCount() (int, bool) {
	for {
		text, ok := s.prompt("How many recommendations would you like? ")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 {
			return n, true
		}
		fmt.Fprintln(s.out, "Please enter a positive number.")
	}
}

func (s *session) promptStrategy() (logics.Strategy, bool) {
	fmt.Fprintln(s.out, "Which type of recommender would you like to use?")
	fmt.Fprintln(s.out, "  1. User-based - suggests places liked by other users with similar tastes.")
	fmt.Fprintln(s.out, "  2. Item-based - suggests places similar to ones you have rated highly.")
	fmt.Fprintln(s.out, "  3. SVD-based - uses patterns in your past reviews to suggest places you might like.")
	for {
		text, ok := s.prompt("Please enter 1, 2 or 3: ")
		if !ok {
			return 0, false
		}
		switch text {
		case "1":
			return logics.StrategyUserBased, true
		case "2":
			return logics.StrategyItemBased, true
		case "3":
			return logics.StrategySVD, true
		}
		fmt.Fprintln(s.out, "Please enter 1, 2 or 3.")
	}
}

func (s *session) prompt(question string) (string, bool) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) render(result *logics.Result) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"#", "ITEM", strings.ToUpper(result.Label), "NAME", "AVG RATING"})
	for i, score := range result.Scores {
		table.Append([]string{
			strconv.Itoa(i + 1),
			score.ItemId,
			strconv.FormatFloat(score.Score, 'f', 4, 64),
			score.Name,
			strconv.FormatFloat(score.AvgRating, 'f', 2, 64),
		})
	}
	table.Render()
}
